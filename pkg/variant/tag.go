package variant

import "fmt"

// Tag selects the active payload of a Value.
type Tag uint8

const (
	TagNull Tag = iota
	TagBoolean
	TagPositiveInteger
	TagNegativeInteger
	TagFloat
	TagString
	TagRawText
	TagArray
	TagObject

	// counter
	tagMax
)

var tagNames = [tagMax]string{
	TagNull:            "Null",
	TagBoolean:         "Boolean",
	TagPositiveInteger: "PositiveInteger",
	TagNegativeInteger: "NegativeInteger",
	TagFloat:           "Float",
	TagString:          "String",
	TagRawText:         "RawText",
	TagArray:           "Array",
	TagObject:          "Object",
}

func (t Tag) String() string {
	if t < tagMax {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

func (t Tag) IsValid() bool {
	return t < tagMax
}

func (t Tag) IsInteger() bool {
	return t == TagPositiveInteger || t == TagNegativeInteger
}

func (t Tag) IsNumber() bool {
	return t.IsInteger() || t == TagFloat
}

func (t Tag) IsText() bool {
	return t == TagString || t == TagRawText
}

func (t Tag) IsCollection() bool {
	return t == TagArray || t == TagObject
}

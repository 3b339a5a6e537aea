package variant

import "fmt"

// Visitor is the capability set used to inspect a Value without knowing its
// tag up front. Accept calls exactly one method per call.
//
// The set is closed: adding a Tag means extending every Visitor.
type Visitor interface {
	VisitNull()
	VisitBoolean(value bool)
	VisitPositiveInteger(magnitude uint64)
	VisitNegativeInteger(magnitude uint64)
	VisitFloat(value float64)
	VisitString(text string)
	VisitRawText(text string, size int)
	VisitArray(array *Array)
	VisitObject(object *Object)
}

// Accept dispatches on the active tag to the matching visitor method. The
// value is never modified; the visitor may be.
func (v Value) Accept(visitor Visitor) {
	switch v.tag {
	case TagNull:
		visitor.VisitNull()
	case TagBoolean:
		visitor.VisitBoolean(v.data != 0)
	case TagPositiveInteger:
		visitor.VisitPositiveInteger(v.data)
	case TagNegativeInteger:
		visitor.VisitNegativeInteger(v.data)
	case TagFloat:
		visitor.VisitFloat(v.AsFloat64())
	case TagString:
		visitor.VisitString(v.text)
	case TagRawText:
		visitor.VisitRawText(v.text, len(v.text))
	case TagArray:
		visitor.VisitArray(v.array)
	case TagObject:
		visitor.VisitObject(v.object)
	default:
		panic(fmt.Sprintf("variant: corrupted value tag %s", v.tag))
	}
}

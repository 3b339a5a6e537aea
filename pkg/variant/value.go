package variant

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tmthrgd/go-hex"
	"golang.org/x/exp/constraints"
)

// Value is a JSON-like tagged union: one of null, bool, integer, float,
// string, serialized raw text, array or object.
//
// Integers are kept as an unsigned magnitude plus a sign tag, so the full
// int64 and uint64 ranges are both representable. Strings are either linked
// (the caller keeps the bytes alive) or owned (copied when the value was
// built); both compare by content.
//
// The zero Value is null.
type Value struct {
	tag    Tag
	owned  bool
	data   uint64
	text   string
	array  *Array
	object *Object
}

func Null() Value {
	return Value{}
}

func Bool(v bool) Value {
	var data uint64
	if v {
		data = 1
	}
	return Value{tag: TagBoolean, data: data}
}

func Int[T constraints.Signed](v T) Value {
	if v < 0 {
		// -(v+1) cannot overflow, even for the minimum of T
		return Value{tag: TagNegativeInteger, data: uint64(-(int64(v) + 1)) + 1}
	}
	return Value{tag: TagPositiveInteger, data: uint64(v)}
}

func Uint[T constraints.Unsigned](v T) Value {
	return Value{tag: TagPositiveInteger, data: uint64(v)}
}

func Float[T constraints.Float](v T) Value {
	return Value{tag: TagFloat, data: math.Float64bits(float64(v))}
}

// Str links the string without copying it.
func Str(s string) Value {
	return Value{tag: TagString, text: s}
}

// StrPtr links the pointed string; a nil pointer is null, not "".
func StrPtr(s *string) Value {
	if s == nil {
		return Null()
	}
	return Str(*s)
}

// OwnedStr copies the string bytes, detaching the value from the caller's
// backing memory.
func OwnedStr(s string) Value {
	return Value{tag: TagString, owned: true, text: strings.Clone(s)}
}

// Raw links an already serialized fragment, kept verbatim.
func Raw(text string) Value {
	return Value{tag: TagRawText, text: text}
}

func OwnedRaw(text string) Value {
	return Value{tag: TagRawText, owned: true, text: strings.Clone(text)}
}

func ArrayOf(elems ...Value) Value {
	return ArrayValue(NewArray(elems...))
}

// ArrayValue wraps an array handle; a nil handle is null.
func ArrayValue(a *Array) Value {
	if a == nil {
		return Null()
	}
	return Value{tag: TagArray, array: a}
}

// ObjectValue wraps an object handle; a nil handle is null.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Null()
	}
	return Value{tag: TagObject, object: o}
}

func (v Value) Tag() Tag {
	return v.tag
}

func (v Value) IsNull() bool {
	return v.tag == TagNull
}

// IsOwned reports whether the string or raw payload was copied at creation.
func (v Value) IsOwned() bool {
	return v.owned
}

func (v Value) AsBool() bool {
	return v.tag == TagBoolean && v.data != 0
}

// AsString returns the text of a String or RawText value, or "".
func (v Value) AsString() string {
	if v.tag.IsText() {
		return v.text
	}
	return ""
}

func (v Value) AsFloat64() float64 {
	switch v.tag {
	case TagFloat:
		return math.Float64frombits(v.data)
	case TagPositiveInteger:
		return float64(v.data)
	case TagNegativeInteger:
		return -float64(v.data)
	}
	return 0
}

// AsInt64 converts numbers to int64, wrapping magnitudes out of range.
func (v Value) AsInt64() int64 {
	switch v.tag {
	case TagPositiveInteger:
		return int64(v.data)
	case TagNegativeInteger:
		return int64(-v.data)
	case TagFloat:
		return int64(math.Float64frombits(v.data))
	}
	return 0
}

// AsUint64 converts numbers to uint64; negative numbers become zero.
func (v Value) AsUint64() uint64 {
	switch v.tag {
	case TagPositiveInteger:
		return v.data
	case TagFloat:
		if f := math.Float64frombits(v.data); f > 0 {
			return uint64(f)
		}
	}
	return 0
}

// Magnitude of an integer value, regardless of its sign.
func (v Value) Magnitude() uint64 {
	if v.tag.IsInteger() {
		return v.data
	}
	return 0
}

func (v Value) AsArray() *Array {
	return v.array
}

func (v Value) AsObject() *Object {
	return v.object
}

// String renders the value in a compact JSON-like form, for display only.
func (v Value) String() string {
	switch v.tag {
	case TagNull:
		return "null"
	case TagBoolean:
		return strconv.FormatBool(v.data != 0)
	case TagPositiveInteger:
		return strconv.FormatUint(v.data, 10)
	case TagNegativeInteger:
		return "-" + strconv.FormatUint(v.data, 10)
	case TagFloat:
		return strconv.FormatFloat(v.AsFloat64(), 'g', -1, 64)
	case TagString:
		return strconv.Quote(v.text)
	case TagRawText:
		return v.text
	case TagArray:
		return v.array.String()
	case TagObject:
		return v.object.String()
	}
	return "<?>"
}

func (v Value) Debug() string {
	tag := v.tag.String()
	if v.owned {
		tag += ":owned"
	}

	switch v.tag {
	case TagNull:
		return fmt.Sprintf("<%s>", tag)
	case TagRawText:
		return fmt.Sprintf("<%s>(%s)", tag, hex.EncodeToString([]byte(v.text)))
	case TagArray:
		return fmt.Sprintf("<%s>(len=%d)", tag, v.array.Len())
	case TagObject:
		return fmt.Sprintf("<%s>(len=%d)", tag, v.object.Len())
	default:
		return fmt.Sprintf("<%s>(%s)", tag, v.String())
	}
}

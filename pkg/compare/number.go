package compare

import (
	"fmt"
	"math"
	"strconv"

	"axlab.dev/variant/pkg/variant"
	"golang.org/x/exp/constraints"
)

// Integer values are compared exactly against integer literals, on sign and
// magnitude, without going through a narrower type.

type signedComparator[T constraints.Signed] struct {
	mismatch
	literal T
	result  Result
}

func (c *signedComparator[T]) VisitPositiveInteger(m uint64) {
	if c.literal < 0 {
		c.result = Greater
	} else {
		c.result = ThreeWay(m, uint64(c.literal))
	}
}

func (c *signedComparator[T]) VisitNegativeInteger(m uint64) {
	if m == 0 {
		c.VisitPositiveInteger(0)
	} else if c.literal >= 0 {
		c.result = Less
	} else {
		// -m against -k: the larger magnitude is the smaller number
		c.result = ThreeWay(magnitude(c.literal), m)
	}
}

func (c *signedComparator[T]) VisitFloat(v float64) {
	c.result = floatVsInteger(v, c.literal < 0, magnitude(c.literal))
}

type unsignedComparator[T constraints.Unsigned] struct {
	mismatch
	literal T
	result  Result
}

func (c *unsignedComparator[T]) VisitPositiveInteger(m uint64) {
	c.result = ThreeWay(m, uint64(c.literal))
}

// A negative value is below every unsigned literal. Negating the magnitude
// in T would wrap around instead.
func (c *unsignedComparator[T]) VisitNegativeInteger(m uint64) {
	if m == 0 {
		c.VisitPositiveInteger(0)
	} else {
		c.result = Less
	}
}

func (c *unsignedComparator[T]) VisitFloat(v float64) {
	c.result = floatVsInteger(v, false, uint64(c.literal))
}

// floatComparator converts integer values to T. Float values are compared in
// float64 against the widened literal, so no precision is lost.
type floatComparator[T constraints.Float] struct {
	mismatch
	literal T
	result  Result
}

func (c *floatComparator[T]) VisitPositiveInteger(m uint64) {
	c.result = ThreeWay(T(m), c.literal)
}

func (c *floatComparator[T]) VisitNegativeInteger(m uint64) {
	c.result = ThreeWay(-T(m), c.literal)
}

func (c *floatComparator[T]) VisitFloat(v float64) {
	c.result = ThreeWay(v, float64(c.literal))
}

// floatVsInteger orders a float value against the integer with the given
// sign and magnitude, without rounding the integer to a float.
func floatVsInteger(v float64, negative bool, m uint64) Result {
	switch {
	case math.IsNaN(v):
		return Incomparable
	case m == 0:
		return ThreeWay(v, 0)
	case v == 0 || (v < 0) != negative:
		if negative {
			return Greater
		}
		return Less
	}

	order := magnitudeOrder(math.Abs(v), m)
	if negative {
		return order.Invert()
	}
	return order
}

// magnitudeOrder compares a positive float with an integer magnitude.
func magnitudeOrder(f float64, m uint64) Result {
	if f >= 1<<64 {
		return Greater
	}
	whole, frac := math.Modf(f)
	if order := ThreeWay(uint64(whole), m); order != Equal {
		return order
	}
	if frac > 0 {
		return Greater
	}
	return Equal
}

func magnitude[T constraints.Signed](v T) uint64 {
	if v < 0 {
		return uint64(-(int64(v) + 1)) + 1
	}
	return uint64(v)
}

// SignedLiteral is a signed integer comparand of any width.
type SignedLiteral[T constraints.Signed] struct {
	value T
}

func Int[T constraints.Signed](v T) SignedLiteral[T] {
	return SignedLiteral[T]{v}
}

func (l SignedLiteral[T]) Equals(v variant.Value) bool {
	return l.Compare(v) == Equal
}

func (l SignedLiteral[T]) Compare(v variant.Value) Result {
	c := signedComparator[T]{literal: l.value, result: Incomparable}
	v.Accept(&c)
	return c.result
}

func (l SignedLiteral[T]) String() string {
	return fmt.Sprintf("%d%s", l.value, suffixOf(l.value))
}

// UnsignedLiteral is an unsigned integer comparand of any width.
type UnsignedLiteral[T constraints.Unsigned] struct {
	value T
}

func Uint[T constraints.Unsigned](v T) UnsignedLiteral[T] {
	return UnsignedLiteral[T]{v}
}

func (l UnsignedLiteral[T]) Equals(v variant.Value) bool {
	return l.Compare(v) == Equal
}

func (l UnsignedLiteral[T]) Compare(v variant.Value) Result {
	c := unsignedComparator[T]{literal: l.value, result: Incomparable}
	v.Accept(&c)
	return c.result
}

func (l UnsignedLiteral[T]) String() string {
	return fmt.Sprintf("%d%s", l.value, suffixOf(l.value))
}

// FloatLiteral is a float32 or float64 comparand.
type FloatLiteral[T constraints.Float] struct {
	value T
}

func Float[T constraints.Float](v T) FloatLiteral[T] {
	return FloatLiteral[T]{v}
}

func (l FloatLiteral[T]) Equals(v variant.Value) bool {
	return l.Compare(v) == Equal
}

func (l FloatLiteral[T]) Compare(v variant.Value) Result {
	c := floatComparator[T]{literal: l.value, result: Incomparable}
	v.Accept(&c)
	return c.result
}

func (l FloatLiteral[T]) String() string {
	suffix := suffixOf(l.value)
	bits := 64
	if suffix == "f32" {
		bits = 32
	}
	text := strconv.FormatFloat(float64(l.value), 'g', -1, bits)
	return text + suffix
}

// Width suffix of a literal, as written in comparison scripts. The defaults
// (int64, float64) and named numeric types have none.
func suffixOf(v any) string {
	switch v.(type) {
	case int:
		return "i"
	case int8:
		return "i8"
	case int16:
		return "i16"
	case int32:
		return "i32"
	case int64:
		return ""
	case uint:
		return "u"
	case uint8:
		return "u8"
	case uint16:
		return "u16"
	case uint32:
		return "u32"
	case uint64:
		return "u64"
	case float32:
		return "f32"
	case float64:
		return ""
	}
	return ""
}

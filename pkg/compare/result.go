package compare

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Result of comparing a dynamic value against a literal, always read as
// "value relative to literal".
type Result int8

const (
	Less    Result = -1
	Equal   Result = 0
	Greater Result = +1

	// The value's tag is outside the literal's category, or a float operand
	// is NaN. Never equal; ordered as Greater by Order.
	Incomparable Result = 2
)

func (r Result) String() string {
	switch r {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Incomparable:
		return "Incomparable"
	}
	return fmt.Sprintf("Result(%d)", int8(r))
}

// Order resolves Incomparable to Greater: a value sorts after any literal it
// cannot be compared with. Keeps the relational operators total.
func (r Result) Order() Result {
	if r == Incomparable {
		return Greater
	}
	return r
}

// Invert returns the result seen from the literal's side.
func (r Result) Invert() Result {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	}
	return r
}

// Sign of the ordered result: -1, 0 or +1.
func (r Result) Sign() int {
	return int(r.Order())
}

// ThreeWay compares two operands of the same type. Operands that are neither
// less, greater nor equal (NaN) are Incomparable.
func ThreeWay[T constraints.Ordered](a, b T) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	}
	return Incomparable
}

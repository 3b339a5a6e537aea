package compare

import "axlab.dev/variant/pkg/variant"

// Literal is a statically typed comparand. Each literal type drives exactly
// one comparator over the value's tag.
//
// Implementations guarantee Equals(v) == (Compare(v) == Equal).
type Literal interface {
	Equals(v variant.Value) bool
	Compare(v variant.Value) Result
	String() string
}

var (
	_ Literal = StringLiteral{}
	_ Literal = BoolLiteral{}
	_ Literal = SignedLiteral[int]{}
	_ Literal = UnsignedLiteral[uint]{}
	_ Literal = FloatLiteral[float64]{}
)

// Equals reports whether the value equals the literal.
func Equals[L Literal](v variant.Value, lit L) bool {
	return lit.Equals(v)
}

// Compare orders the value relative to the literal. The result may be
// Incomparable; use Result.Order for a total order.
func Compare[L Literal](v variant.Value, lit L) Result {
	return lit.Compare(v)
}

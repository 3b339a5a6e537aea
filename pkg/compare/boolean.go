package compare

import (
	"strconv"

	"axlab.dev/variant/pkg/variant"
)

// boolComparator orders false before true. Only booleans compare.
type boolComparator struct {
	mismatch
	literal bool
	result  Result
}

func (c *boolComparator) VisitBoolean(v bool) {
	c.result = ThreeWay(bit(v), bit(c.literal))
}

func bit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

type BoolLiteral struct {
	value bool
}

func Bool(v bool) BoolLiteral {
	return BoolLiteral{v}
}

func (l BoolLiteral) Equals(v variant.Value) bool {
	return l.Compare(v) == Equal
}

func (l BoolLiteral) Compare(v variant.Value) Result {
	c := boolComparator{literal: l.value, result: Incomparable}
	v.Accept(&c)
	return c.result
}

func (l BoolLiteral) String() string {
	return strconv.FormatBool(l.value)
}

package compare

import (
	"strconv"
	"strings"

	"axlab.dev/variant/pkg/variant"
)

// stringComparator compares text byte-wise and case-sensitively. A null
// literal equals a null value and sorts before any text.
type stringComparator struct {
	mismatch
	literal   string
	null      bool
	equalOnly bool
	result    Result
}

func (c *stringComparator) VisitNull() {
	if c.null {
		c.result = Equal
	} else {
		c.result = Less
	}
}

func (c *stringComparator) VisitString(text string) {
	c.compareText(text)
}

func (c *stringComparator) VisitRawText(text string, _ int) {
	c.compareText(text)
}

func (c *stringComparator) compareText(text string) {
	switch {
	case c.null:
		c.result = Greater
	case c.equalOnly:
		if text == c.literal {
			c.result = Equal
		}
	default:
		c.result = Result(strings.Compare(text, c.literal))
	}
}

// StringLiteral is a string comparand, possibly null.
type StringLiteral struct {
	text string
	null bool
}

func Str(s string) StringLiteral {
	return StringLiteral{text: s}
}

// StrPtr is a string literal that is null for a nil pointer.
func StrPtr(s *string) StringLiteral {
	if s == nil {
		return Null()
	}
	return Str(*s)
}

// Null is the null literal. It only equals a null value.
func Null() StringLiteral {
	return StringLiteral{null: true}
}

func (l StringLiteral) IsNull() bool {
	return l.null
}

func (l StringLiteral) Equals(v variant.Value) bool {
	c := stringComparator{literal: l.text, null: l.null, equalOnly: true, result: Incomparable}
	v.Accept(&c)
	return c.result == Equal
}

func (l StringLiteral) Compare(v variant.Value) Result {
	c := stringComparator{literal: l.text, null: l.null, result: Incomparable}
	v.Accept(&c)
	return c.result
}

func (l StringLiteral) String() string {
	if l.null {
		return "null"
	}
	return strconv.Quote(l.text)
}

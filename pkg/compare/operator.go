package compare

import (
	"fmt"

	"axlab.dev/variant/pkg/variant"
)

// Op is a relational operator.
type Op uint8

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var opSymbols = [...]string{
	Eq: "==",
	Ne: "!=",
	Lt: "<",
	Le: "<=",
	Gt: ">",
	Ge: ">=",
}

func (op Op) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

func ParseOp(symbol string) (Op, bool) {
	for op, it := range opSymbols {
		if it == symbol {
			return Op(op), true
		}
	}
	return 0, false
}

// Swap returns the operator with its operands exchanged: `a < b` is `b > a`.
func (op Op) Swap() Op {
	switch op {
	case Lt:
		return Gt
	case Le:
		return Ge
	case Gt:
		return Lt
	case Ge:
		return Le
	}
	return op
}

// Eval applies `value OP literal`.
//
// Equality goes through Equals, ordering through Compare. An incomparable
// value is unequal and orders as greater than the literal.
func Eval[L Literal](v variant.Value, op Op, lit L) bool {
	switch op {
	case Eq:
		return Equals(v, lit)
	case Ne:
		return !Equals(v, lit)
	}

	order := Compare(v, lit).Order()
	switch op {
	case Lt:
		return order == Less
	case Le:
		return order != Greater
	case Gt:
		return order == Greater
	case Ge:
		return order != Less
	}
	panic(fmt.Sprintf("compare: invalid operator %s", op))
}

// EvalLiteral applies `literal OP value`, as the mirror of Eval.
func EvalLiteral[L Literal](lit L, op Op, v variant.Value) bool {
	return Eval(v, op.Swap(), lit)
}

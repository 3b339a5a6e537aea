package compare_test

import (
	"math"
	"testing"

	"axlab.dev/variant/pkg/compare"
	"axlab.dev/variant/pkg/variant"
	"github.com/stretchr/testify/require"
)

var allOps = []compare.Op{compare.Eq, compare.Ne, compare.Lt, compare.Le, compare.Gt, compare.Ge}

func TestParseOp(t *testing.T) {
	test := require.New(t)

	for _, op := range allOps {
		parsed, ok := compare.ParseOp(op.String())
		test.True(ok, op.String())
		test.Equal(op, parsed)
	}

	_, ok := compare.ParseOp("=")
	test.False(ok)
	_, ok = compare.ParseOp("<>")
	test.False(ok)

	test.Equal("<=", compare.Le.String())
	test.Equal("Op(9)", compare.Op(9).String())
}

func TestSwap(t *testing.T) {
	test := require.New(t)
	test.Equal(compare.Eq, compare.Eq.Swap())
	test.Equal(compare.Ne, compare.Ne.Swap())
	test.Equal(compare.Gt, compare.Lt.Swap())
	test.Equal(compare.Ge, compare.Le.Swap())
	test.Equal(compare.Lt, compare.Gt.Swap())
	test.Equal(compare.Le, compare.Ge.Swap())

	for _, op := range allOps {
		test.Equal(op, op.Swap().Swap())
	}
}

func TestEvalInvalidOperator(t *testing.T) {
	test := require.New(t)
	test.Panics(func() {
		compare.Eval(variant.Int(1), compare.Op(42), compare.Int(1))
	})
}

func TestResult(t *testing.T) {
	test := require.New(t)

	test.Equal("Less", compare.Less.String())
	test.Equal("Incomparable", compare.Incomparable.String())
	test.Equal("Result(5)", compare.Result(5).String())

	test.Equal(compare.Greater, compare.Incomparable.Order())
	test.Equal(compare.Equal, compare.Equal.Order())

	test.Equal(compare.Greater, compare.Less.Invert())
	test.Equal(compare.Less, compare.Greater.Invert())
	test.Equal(compare.Equal, compare.Equal.Invert())
	test.Equal(compare.Incomparable, compare.Incomparable.Invert())

	test.Equal(-1, compare.Less.Sign())
	test.Equal(0, compare.Equal.Sign())
	test.Equal(1, compare.Incomparable.Sign())

	test.Equal(compare.Less, compare.ThreeWay("a", "b"))
	test.Equal(compare.Equal, compare.ThreeWay(3, 3))
	test.Equal(compare.Greater, compare.ThreeWay(2.5, 1.0))
	test.Equal(compare.Incomparable, compare.ThreeWay(math.NaN(), 1.0))
}

func TestLiteralString(t *testing.T) {
	test := require.New(t)

	test.Equal(`"hello"`, compare.Str("hello").String())
	test.Equal(`"a\"b"`, compare.Str(`a"b`).String())
	test.Equal("null", compare.Null().String())
	test.Equal("true", compare.Bool(true).String())
	test.Equal("42", compare.Int(int64(42)).String())
	test.Equal("42i", compare.Int(42).String())
	test.Equal("-8i8", compare.Int(int8(-8)).String())
	test.Equal("7u16", compare.Uint(uint16(7)).String())
	test.Equal("7u64", compare.Uint(uint64(7)).String())
	test.Equal("123.45", compare.Float(123.45).String())
	test.Equal("123.45f32", compare.Float(float32(123.45)).String())
}

// Every pair of value and literal must satisfy the operator laws, whatever
// the combination of tags.
func TestOperatorLaws(t *testing.T) {
	test := require.New(t)

	values := []variant.Value{
		variant.Null(),
		variant.Bool(false),
		variant.Bool(true),
		variant.Int(-42),
		variant.Int(0),
		variant.Int(42),
		variant.Uint(uint64(math.MaxUint64)),
		variant.Float(42.0),
		variant.Float(-0.5),
		variant.Float(math.NaN()),
		variant.Str(""),
		variant.Str("42"),
		variant.Raw("hello"),
		variant.ArrayOf(variant.Int(42)),
		variant.ObjectValue(variant.NewObject()),
	}
	literals := []compare.Literal{
		compare.Null(),
		compare.Str(""),
		compare.Str("hello"),
		compare.Bool(false),
		compare.Bool(true),
		compare.Int(int8(-42)),
		compare.Int(42),
		compare.Uint(uint8(42)),
		compare.Uint(uint64(math.MaxUint64)),
		compare.Float(42.0),
		compare.Float(float32(-0.5)),
		compare.Float(math.NaN()),
	}

	for _, v := range values {
		for _, lit := range literals {
			eval := func(op compare.Op) bool { return compare.Eval(v, op, lit) }
			where := v.Debug() + " vs " + lit.String()

			test.Equal(lit.Equals(v), lit.Compare(v) == compare.Equal, where)
			test.Equal(eval(compare.Eq), compare.Equals(v, lit), where)
			test.NotEqual(eval(compare.Eq), eval(compare.Ne), where)

			// exactly one of <, ==, > holds
			count := 0
			for _, it := range []bool{eval(compare.Lt), eval(compare.Eq), eval(compare.Gt)} {
				if it {
					count++
				}
			}
			test.Equal(1, count, where)

			test.Equal(eval(compare.Lt) || eval(compare.Eq), eval(compare.Le), where)
			test.Equal(eval(compare.Gt) || eval(compare.Eq), eval(compare.Ge), where)

			for _, op := range allOps {
				test.Equal(eval(op.Swap()), compare.EvalLiteral(lit, op, v), "%s %s", where, op)
			}
		}
	}
}

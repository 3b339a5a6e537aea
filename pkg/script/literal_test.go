package script_test

import (
	"math"
	"testing"

	"axlab.dev/variant/pkg/compare"
	"axlab.dev/variant/pkg/script"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	test := require.New(t)

	check := func(text string, expected compare.Literal) {
		lit, err := script.ParseLiteral(text)
		test.NoError(err, text)
		test.Equal(expected, lit, text)
	}

	check("null", compare.Null())
	check("true", compare.Bool(true))
	check("false", compare.Bool(false))
	check(`"a\tb"`, compare.Str("a\tb"))
	check("`a\\tb`", compare.Str(`a\tb`))
	check(`""`, compare.Str(""))

	check("42", compare.Int(int64(42)))
	check("-42", compare.Int(int64(-42)))
	check("1_000", compare.Int(int64(1000)))
	check("0x2a", compare.Int(int64(42)))
	check("0x2Au8", compare.Uint(uint8(42)))
	check("18446744073709551615", compare.Uint(uint64(math.MaxUint64)))
	check("-9223372036854775808", compare.Int(int64(math.MinInt64)))

	check("42i", compare.Int(42))
	check("-128i8", compare.Int(int8(-128)))
	check("42i16", compare.Int(int16(42)))
	check("42i32", compare.Int(int32(42)))
	check("42i64", compare.Int(int64(42)))
	check("42u", compare.Uint(uint(42)))
	check("255u8", compare.Uint(uint8(255)))
	check("42u16", compare.Uint(uint16(42)))
	check("42u32", compare.Uint(uint32(42)))
	check("42u64", compare.Uint(uint64(42)))

	check("123.45", compare.Float(123.45))
	check("-1e3", compare.Float(-1000.0))
	check("123.45f32", compare.Float(float32(123.45)))
	check("42f32", compare.Float(float32(42)))
	check("42f64", compare.Float(42.0))
	check("0x1f32", compare.Int(int64(0x1f32)))
}

func TestParseLiteralErrors(t *testing.T) {
	test := require.New(t)

	for _, text := range []string{
		"128i8",
		"256u8",
		"-1u8",
		"1.5i32",
		"42x",
		"42abc",
		"18446744073709551616",
		`"unterminated`,
		"nil",
	} {
		_, err := script.ParseLiteral(text)
		test.Error(err, text)
	}

	_, err := script.ParseLiteral("128i8")
	test.EqualError(err, "invalid number `128i8`: value out of range")
}

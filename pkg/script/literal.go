package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"axlab.dev/variant/pkg/compare"
	"golang.org/x/exp/constraints"
)

var numberSuffix = regexp.MustCompile(`([iu](8|16|32|64)?|f(32|64))$`)

// ParseLiteral reads a literal as written in a script: a quoted string,
// `null`, `true`, `false` or a number.
//
// Integers default to int64, and to uint64 when too large for it. Numbers
// with a fraction or exponent default to float64. A suffix selects the
// literal type: `i`/`u` for int/uint, `i8`..`i64`, `u8`..`u64`, `f32`, `f64`.
func ParseLiteral(text string) (compare.Literal, error) {
	switch text {
	case "null":
		return compare.Null(), nil
	case "true":
		return compare.Bool(true), nil
	case "false":
		return compare.Bool(false), nil
	}

	if strings.HasPrefix(text, `"`) || strings.HasPrefix(text, "`") {
		str, err := strconv.Unquote(text)
		if err != nil {
			return nil, fmt.Errorf("invalid string %s", text)
		}
		return compare.Str(str), nil
	}

	lit, err := parseNumber(text)
	if err != nil {
		return nil, fmt.Errorf("invalid number `%s`: %v", text, err)
	}
	return lit, nil
}

func parseNumber(text string) (compare.Literal, error) {
	body, suffix := text, ""
	digits := strings.ToLower(strings.TrimPrefix(text, "-"))
	isHex := strings.HasPrefix(digits, "0x")
	if loc := numberSuffix.FindStringIndex(text); loc != nil {
		if !(isHex && text[loc[0]] == 'f') {
			body, suffix = text[:loc[0]], text[loc[0]:]
		}
	}
	body = strings.TrimSuffix(body, "_")
	isFloat := !isHex && strings.ContainsAny(body, ".eE")

	switch suffix {
	case "":
		if isFloat {
			return floatOf[float64](body)
		}
		v, err := strconv.ParseInt(body, 0, 64)
		if err != nil && !strings.HasPrefix(body, "-") {
			if u, err := strconv.ParseUint(body, 0, 64); err == nil {
				return compare.Uint(u), nil
			}
		}
		if err != nil {
			return nil, unwrapNum(err)
		}
		return compare.Int(v), nil
	case "f32":
		return floatOf[float32](body)
	case "f64":
		return floatOf[float64](body)
	}

	if isFloat {
		return nil, fmt.Errorf("integer suffix `%s` on a float", suffix)
	}

	switch suffix {
	case "i":
		return signedOf[int](body, strconv.IntSize)
	case "i8":
		return signedOf[int8](body, 8)
	case "i16":
		return signedOf[int16](body, 16)
	case "i32":
		return signedOf[int32](body, 32)
	case "i64":
		return signedOf[int64](body, 64)
	case "u":
		return unsignedOf[uint](body, strconv.IntSize)
	case "u8":
		return unsignedOf[uint8](body, 8)
	case "u16":
		return unsignedOf[uint16](body, 16)
	case "u32":
		return unsignedOf[uint32](body, 32)
	case "u64":
		return unsignedOf[uint64](body, 64)
	}
	return nil, fmt.Errorf("unknown suffix `%s`", suffix)
}

func signedOf[T constraints.Signed](body string, bits int) (compare.Literal, error) {
	v, err := strconv.ParseInt(body, 0, bits)
	if err != nil {
		return nil, unwrapNum(err)
	}
	return compare.Int(T(v)), nil
}

func unsignedOf[T constraints.Unsigned](body string, bits int) (compare.Literal, error) {
	v, err := strconv.ParseUint(body, 0, bits)
	if err != nil {
		return nil, unwrapNum(err)
	}
	return compare.Uint(T(v)), nil
}

func floatOf[T constraints.Float](body string) (compare.Literal, error) {
	bits := 64
	if _, is32 := any(T(0)).(float32); is32 {
		bits = 32
	}
	v, err := strconv.ParseFloat(body, bits)
	if err != nil {
		return nil, unwrapNum(err)
	}
	return compare.Float(T(v)), nil
}

// unwrapNum drops the strconv prefix, which repeats the parsed text.
func unwrapNum(err error) error {
	if num, ok := err.(*strconv.NumError); ok {
		return num.Err
	}
	return err
}

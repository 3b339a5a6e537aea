package variant

import "math"

// Equal performs a deep equality check between two values.
//
// Text compares by content, whatever the ownership; String and RawText are
// never equal to each other. Numbers compare by mathematical value, so the
// integer 42 equals the float 42.0, and NaN equals nothing. Arrays compare
// element-wise, objects by key regardless of member order.
func Equal(a, b Value) bool {
	if a.tag.IsNumber() && b.tag.IsNumber() {
		return numbersEqual(a, b)
	}

	if a.tag != b.tag {
		return false
	}

	switch a.tag {
	case TagNull:
		return true
	case TagBoolean:
		return a.data == b.data
	case TagString, TagRawText:
		return a.text == b.text
	case TagArray:
		return arraysEqual(a.array, b.array)
	case TagObject:
		return objectsEqual(a.object, b.object)
	}
	return false
}

func numbersEqual(a, b Value) bool {
	if a.tag == TagFloat && b.tag == TagFloat {
		return a.AsFloat64() == b.AsFloat64()
	}
	if a.tag == TagFloat {
		a, b = b, a
	}
	if b.tag == TagFloat {
		return integerEqualsFloat(a, b.AsFloat64())
	}
	// zero has a single representation, as a positive integer
	return a.tag == b.tag && a.data == b.data
}

func integerEqualsFloat(v Value, f float64) bool {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return false
	}
	switch v.tag {
	case TagPositiveInteger:
		return f >= 0 && f < 1<<64 && uint64(f) == v.data
	case TagNegativeInteger:
		return f < 0 && -f <= 1<<63 && uint64(-f) == v.data
	}
	return false
}

func arraysEqual(a, b *Array) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !Equal(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

func objectsEqual(a, b *Object) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}

	equal := true
	a.Each(func(key string, value Value) bool {
		other, ok := b.Get(key)
		equal = ok && Equal(value, other)
		return equal
	})
	return equal
}

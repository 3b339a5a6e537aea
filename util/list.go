package util

// Insert elems into the list at index, shifting the tail. Grows the backing
// array geometrically when it runs out of capacity.
func Insert[T any](ls *[]T, index int, elems ...T) {
	incLen := len(elems)
	if incLen == 0 {
		return
	}

	cur := *ls
	curLen := len(cur)
	if index == curLen {
		*ls = append(cur, elems...)
		return
	}

	newLen := curLen + incLen
	if cap(cur) >= newLen {
		cur = cur[0:newLen]
		copy(cur[index+incLen:], cur[index:])
		copy(cur[index:], elems)
		*ls = cur
		return
	}

	var newCap int
	if curLen < 8 {
		newCap = 8
	} else if curLen < 1024 {
		newCap = curLen * 2
	} else {
		newCap = curLen + (curLen / 2)
	}
	if minCap := curLen + incLen*2; minCap > newCap {
		newCap = minCap
	}

	grown := make([]T, newLen, newCap)
	copy(grown, cur[:index])
	copy(grown[index:], elems)
	copy(grown[index+incLen:], cur[index:])
	*ls = grown
}

// RemoveAt deletes the element at index, keeping the order of the others.
func RemoveAt[T any](ls *[]T, index int) T {
	cur := *ls
	out := cur[index]
	copy(cur[index:], cur[index+1:])

	var zero T
	cur[len(cur)-1] = zero
	*ls = cur[:len(cur)-1]
	return out
}

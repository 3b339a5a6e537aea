package variant

import (
	"strconv"
	"strings"

	"axlab.dev/variant/util"
)

// Array is an ordered list of values, shared by every Value wrapping it.
type Array struct {
	elems []Value
}

func NewArray(elems ...Value) *Array {
	out := &Array{}
	out.Add(elems...)
	return out
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

func (a *Array) At(index int) Value {
	return a.elems[index]
}

func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return a.elems
}

func (a *Array) Add(elems ...Value) {
	a.elems = append(a.elems, elems...)
}

func (a *Array) Insert(index int, elems ...Value) {
	util.Assert(index >= 0 && index <= a.Len(), util.Msg("array insert index %d out of range [0, %d]", index, a.Len()))
	util.Insert(&a.elems, index, elems...)
}

func (a *Array) RemoveAt(index int) Value {
	return util.RemoveAt(&a.elems, index)
}

func (a *Array) String() string {
	var out strings.Builder
	out.WriteString("[")
	for i, it := range a.Values() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(it.String())
	}
	out.WriteString("]")
	return out.String()
}

// Object maps keys to values, keeping insertion order.
type Object struct {
	members []member
}

type member struct {
	key   string
	value Value
}

func NewObject() *Object {
	return &Object{}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

func (o *Object) Get(key string) (Value, bool) {
	if index := o.indexOf(key); index >= 0 {
		return o.members[index].value, true
	}
	return Null(), false
}

// Set replaces the value of an existing key in place, or appends a new one.
func (o *Object) Set(key string, value Value) *Object {
	if index := o.indexOf(key); index >= 0 {
		o.members[index].value = value
	} else {
		o.members = append(o.members, member{key, value})
	}
	return o
}

func (o *Object) Remove(key string) bool {
	index := o.indexOf(key)
	if index < 0 {
		return false
	}
	util.RemoveAt(&o.members, index)
	return true
}

func (o *Object) Keys() (out []string) {
	o.Each(func(key string, _ Value) bool {
		out = append(out, key)
		return true
	})
	return out
}

// Each calls fn for every member in insertion order until it returns false.
func (o *Object) Each(fn func(key string, value Value) bool) {
	if o == nil {
		return
	}
	for _, it := range o.members {
		if !fn(it.key, it.value) {
			return
		}
	}
}

func (o *Object) String() string {
	var out strings.Builder
	out.WriteString("{")
	o.Each(func(key string, value Value) bool {
		if out.Len() > 1 {
			out.WriteString(", ")
		}
		out.WriteString(strconv.Quote(key))
		out.WriteString(": ")
		out.WriteString(value.String())
		return true
	})
	out.WriteString("}")
	return out.String()
}

func (o *Object) indexOf(key string) int {
	for i := 0; i < o.Len(); i++ {
		if o.members[i].key == key {
			return i
		}
	}
	return -1
}

package variant

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var ErrUnsupported = errors.New("unsupported type")

// FromAny converts a generic Go value, as produced by document decoders,
// into a Value. Decoded strings are owned; map members are ordered by key.
func FromAny(input any) (Value, error) {
	switch v := input.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Null(), nil
		}
		return *v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint(v), nil
	case uint16:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return OwnedStr(v), nil
	case *string:
		if v == nil {
			return Null(), nil
		}
		return OwnedStr(*v), nil
	case []byte:
		return OwnedRaw(string(v)), nil
	case time.Time:
		return OwnedStr(v.Format(time.RFC3339Nano)), nil
	case []any:
		out := NewArray()
		for i, it := range v {
			elem, err := FromAny(it)
			if err != nil {
				return Null(), fmt.Errorf("[%d]: %w", i, err)
			}
			out.Add(elem)
		}
		return ArrayValue(out), nil
	case map[string]any:
		return objectFrom(v)
	case map[any]any:
		members := make(map[string]any, len(v))
		for key, it := range v {
			switch key.(type) {
			case string, bool, int, int64, uint64, float64:
				name := fmt.Sprint(key)
				if _, dup := members[name]; dup {
					return Null(), fmt.Errorf("%w: duplicate object key %q", ErrUnsupported, name)
				}
				members[name] = it
			default:
				return Null(), fmt.Errorf("%w: object key of type %T", ErrUnsupported, key)
			}
		}
		return objectFrom(members)
	}
	return Null(), fmt.Errorf("%w: %T", ErrUnsupported, input)
}

func objectFrom(members map[string]any) (Value, error) {
	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := NewObject()
	for _, key := range keys {
		elem, err := FromAny(members[key])
		if err != nil {
			return Null(), fmt.Errorf("%q: %w", key, err)
		}
		out.Set(key, elem)
	}
	return ObjectValue(out), nil
}

// DecodeYAML decodes a single YAML document into a Value.
func DecodeYAML(data []byte) (Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Null(), fmt.Errorf("decode yaml: %w", err)
	}
	out, err := FromAny(doc)
	if err != nil {
		return Null(), fmt.Errorf("decode yaml: %w", err)
	}
	return out, nil
}

// DecodeMsgpack decodes a MessagePack encoded value.
func DecodeMsgpack(data []byte) (Value, error) {
	var doc any
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return Null(), fmt.Errorf("decode msgpack: %w", err)
	}
	out, err := FromAny(doc)
	if err != nil {
		return Null(), fmt.Errorf("decode msgpack: %w", err)
	}
	return out, nil
}

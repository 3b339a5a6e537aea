package variant_test

import (
	"testing"

	"axlab.dev/variant/pkg/variant"
	"axlab.dev/variant/util"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFromAny(t *testing.T) {
	test := require.New(t)

	check := func(expected variant.Value, input any) {
		actual, err := variant.FromAny(input)
		test.NoError(err)
		test.True(variant.Equal(expected, actual), "expected %s, got %s", expected, actual)
		test.Equal(expected.Tag(), actual.Tag())
	}

	check(variant.Null(), nil)
	check(variant.Bool(true), true)
	check(variant.Int(-5), int8(-5))
	check(variant.Int(5), int32(5))
	check(variant.Uint(uint64(1<<63)), uint64(1<<63))
	check(variant.Float(1.5), float32(1.5))
	check(variant.Str("hi"), "hi")
	check(variant.Raw("\x00\x01"), []byte{0, 1})
	check(variant.Int(3), variant.Int(3))
	check(variant.ArrayOf(variant.Int(1), variant.Str("a")), []any{1, "a"})

	obj, err := variant.FromAny(map[string]any{"b": 1, "a": []any{true}})
	test.NoError(err)
	test.Equal([]string{"a", "b"}, obj.AsObject().Keys())

	obj, err = variant.FromAny(map[any]any{1: "one", true: "yes"})
	test.NoError(err)
	test.Equal([]string{"1", "true"}, obj.AsObject().Keys())

	owned, err := variant.FromAny("text")
	test.NoError(err)
	test.True(owned.IsOwned())
}

func TestFromAnyUnsupported(t *testing.T) {
	test := require.New(t)

	_, err := variant.FromAny(struct{}{})
	test.ErrorIs(err, variant.ErrUnsupported)

	_, err = variant.FromAny([]any{1, map[string]any{"x": make(chan int)}})
	test.ErrorIs(err, variant.ErrUnsupported)
	test.Contains(err.Error(), `[1]: "x": unsupported type: chan int`)

	_, err = variant.FromAny(map[any]any{[2]int{}: 1})
	test.ErrorIs(err, variant.ErrUnsupported)

	// keys that print the same would silently overwrite each other
	_, err = variant.FromAny(map[any]any{1: "a", "1": "b"})
	test.ErrorIs(err, variant.ErrUnsupported)
	test.Contains(err.Error(), `duplicate object key "1"`)

	_, err = variant.FromAny(map[any]any{true: 1, "true": 2})
	test.ErrorIs(err, variant.ErrUnsupported)
}

func TestDecodeYAML(t *testing.T) {
	test := require.New(t)

	doc := util.Try(variant.DecodeYAML([]byte(util.Text(`
		name: sensor
		reading: -12
		ratio: 0.25
		tags: [a, b]
		enabled: false
		owner: ~
	`))))

	test.Equal(variant.TagObject, doc.Tag())
	test.Equal(`{"enabled": false, "name": "sensor", "owner": null, "ratio": 0.25, "reading": -12, "tags": ["a", "b"]}`, doc.String())

	_, err := variant.DecodeYAML([]byte("a: [1, 2"))
	test.ErrorContains(err, "decode yaml")
}

func TestDecodeMsgpack(t *testing.T) {
	test := require.New(t)

	data := util.Try(msgpack.Marshal(map[string]any{
		"id":    uint32(7),
		"delta": int8(-3),
		"name":  "probe",
		"list":  []any{1.5, nil},
	}))

	doc := util.Try(variant.DecodeMsgpack(data))
	expected := variant.NewObject().
		Set("delta", variant.Int(-3)).
		Set("id", variant.Uint(uint8(7))).
		Set("list", variant.ArrayOf(variant.Float(1.5), variant.Null())).
		Set("name", variant.Str("probe"))
	test.True(variant.Equal(variant.ObjectValue(expected), doc), "got %s", doc)

	_, err := variant.DecodeMsgpack([]byte{0xc1})
	test.ErrorContains(err, "decode msgpack")
}

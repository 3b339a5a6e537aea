package util_test

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"axlab.dev/variant/tester"
	"axlab.dev/variant/util"
	"github.com/stretchr/testify/require"
)

func TestGlobFiles(t *testing.T) {
	test := require.New(t)

	dir := tester.MakeDir("glob", map[string]string{
		"top.in":               "",
		"top.out":              "",
		"run/numbers.in":       "",
		"run/numbers.out":      "",
		"run/strings.in":       "",
		"run/strings.out.yaml": "",
		"tokens/sub/basic.in":  "",
		"tokens/sub/basic.out": "",
	})
	defer dir.Delete()

	path := dir.DirPath()

	test.Equal(
		[]string{"run/numbers.in", "run/strings.in", "tokens/sub/basic.in", "top.in"},
		util.Glob(path, "*.in"),
	)
	test.Equal(
		[]string{"tokens/sub/basic.in", "tokens/sub/basic.out"},
		util.Glob(path, "sub/*"),
	)
	test.Equal(
		[]string{"run/numbers.out", "run/strings.out.yaml"},
		util.Glob(path, "run/*.(out|yaml)"),
	)
	test.Equal(
		[]string{"top.in", "top.out"},
		util.Glob(path, "t??.*"),
	)
	test.Empty(util.Glob(path, "*.none"))

	test.Equal("run/numbers.out", util.WithExtension("run/numbers.in", ".out"))
	test.Equal("basic", util.WithExtension("basic.in", ""))
}

func TestGlobRegex(t *testing.T) {
	test := require.New(t)

	for _, it := range []struct {
		pattern string
		match   []string
		reject  []string
	}{
		{"abc", []string{"abc"}, []string{"123", ""}},
		{".", []string{"."}, []string{"!"}},
		{"a/b", []string{"a/b", "a\\b"}, []string{"ab"}},
		{"a\\b", []string{"a/b", "a\\b"}, nil},
		{"a?c", []string{"abc", "a c", "a\tc", "a\nc"}, []string{"ac", "a/c", "a\\c"}},
		{"*", []string{"", "a", "abc"}, []string{"a/b"}},
		{"a*c", []string{"ac", "abc", "abbc"}, []string{"a/c", "ab\\bc"}},
		{"[?]", []string{"[a]", "[滅]"}, []string{"[滅多]"}},
		{"*.(in|out)", []string{"a.in", "a.out", ".in"}, []string{"a.yaml", "a.inn", "d/a.in"}},
		{"a|x?z", []string{"a", "xyz"}, []string{"", "ab", "x00z"}},
	} {
		re := regexp.MustCompile("^(" + util.GlobRegex(it.pattern) + ")$")
		for _, input := range it.match {
			test.True(re.MatchString(input), "%q should match %q", it.pattern, input)
		}
		for _, input := range it.reject {
			test.False(re.MatchString(input), "%q should not match %q", it.pattern, input)
		}
	}
}

func TestReadWriteYaml(t *testing.T) {
	test := require.New(t)

	dir := tester.MakeDir("yaml", map[string]string{
		"input.yaml": `
			name: sample
			values: [1, 2.5, "x", null]
		`,
	})
	defer dir.Delete()

	path := dir.DirPath()
	test.Nil(util.ReadYaml(filepath.Join(path, "missing.yaml"), nil))

	data := util.ReadYaml(filepath.Join(path, "input.yaml"), nil)
	test.Equal(map[string]any{
		"name":   "sample",
		"values": []any{1, 2.5, "x", nil},
	}, data)

	out := filepath.Join(path, "output.yaml")
	util.WriteYaml(out, map[string]any{"answer": 42})
	test.Equal("answer: 42\n", util.ReadText(out))
}

func TestNoErrorPanicsWithFatal(t *testing.T) {
	test := require.New(t)

	test.NotPanics(func() { util.NoError(nil, "unused") })

	cause := errors.New("disk on fire")
	defer func() {
		err, ok := recover().(util.Fatal)
		test.True(ok)
		test.ErrorIs(err, cause)
		test.Equal("fatal error: reading - disk on fire", err.Error())
	}()
	util.NoError(cause, "reading")
}

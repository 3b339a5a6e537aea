package tester_test

import (
	"errors"
	"testing"

	"axlab.dev/variant/pkg/variant"
	"axlab.dev/variant/tester"
	"axlab.dev/variant/util"
	"github.com/stretchr/testify/require"
)

func TestCheckData(t *testing.T) {
	tester.CheckLines(t, "testdata/tags", func(lines []string) any {
		var out []any
		for _, it := range lines {
			value := util.Try(variant.DecodeYAML([]byte(it)))
			out = append(out, value.Tag().String())
		}
		return out
	})
}

func TestCheckText(t *testing.T) {
	tester.CheckLines(t, "testdata/debug", func(lines []string) any {
		var out []string
		for _, it := range lines {
			value := util.Try(variant.DecodeYAML([]byte(it)))
			out = append(out, value.Debug())
		}
		return out
	})
}

func TestTestFunc(t *testing.T) {
	test := require.New(t)

	run := func(result any) tester.Output {
		return tester.TestFunc(func(tester.Input) any { return result }).Run(tester.Input{})
	}

	test.Equal("a\nb", run([]string{"a", "b"}).StdOut)
	test.Equal("text", run("text").StdOut)
	test.Equal(42, run(42).Data)

	cause := errors.New("failed")
	test.ErrorIs(run(cause).Error, cause)
	test.EqualError(run(nil).Error, "the test generated no output")
}

func TestDiff(t *testing.T) {
	test := require.New(t)

	test.Empty(tester.Diff([]string{"a", "b"}, []string{"a", "b"}))

	expected := []string{"a", "b", "c"}
	diff := tester.Diff(expected, []string{"a", "x", "c"})
	test.Contains(diff, "--- expected")
	test.Contains(diff, "+++ actual")
	test.Contains(diff, "-b\n")
	test.Contains(diff, "+x\n")
	test.Equal([]string{"a", "b", "c"}, expected)
}

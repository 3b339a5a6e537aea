package tester

import (
	"fmt"
	"strings"
	"testing"
)

// TestFunc adapts a function to a TestRunner. A string or []string result is
// checked as text output, an error fails the run, anything else is checked
// as data.
type TestFunc func(input Input) any

func (fn TestFunc) Run(input Input) (out Output) {
	switch v := fn(input).(type) {
	case nil:
		out.Error = fmt.Errorf("the test generated no output")
	case string:
		out.StdOut = v
	case []string:
		out.StdOut = strings.Join(v, "\n")
	case error:
		out.Error = v
	default:
		out.Data = v
	}
	return
}

// CheckInput runs fn for every `*.in` file under testdata.
func CheckInput(t *testing.T, testdata string, fn TestFunc) {
	NewRunner(t, testdata, fn).Run()
}

// CheckLines is CheckInput over the non-comment lines of each input.
func CheckLines(t *testing.T, testdata string, fn func(lines []string) any) {
	CheckInput(t, testdata, func(input Input) any {
		return fn(input.Lines())
	})
}

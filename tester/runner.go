package tester

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"axlab.dev/variant/util"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

// When set, expected outputs are overwritten with the actual test output.
var Rewrite = os.Getenv("TESTER_REWRITE") != ""

// Generic interface for a test runner.
type TestRunner interface {
	Run(input Input) (out Output)
}

// Output from a TestRunner.
type Output struct {
	Error  error
	StdOut string
	StdErr string
	Data   any
}

// Input to a TestRunner.
type Input struct {
	path string
	name string
}

func (input Input) Name() string {
	return input.name
}

func (input Input) Path() string {
	return filepath.Join(input.path, input.name)
}

// Non-empty lines of the input, trimmed, skipping `#` comments.
func (input Input) Lines() (out []string) {
	for _, it := range util.Lines(input.Text()) {
		if it = strings.TrimSpace(it); len(it) > 0 {
			if !strings.HasPrefix(it, "#") {
				out = append(out, it)
			}
		}
	}
	return out
}

func (input Input) Text() string {
	data := util.Try(os.ReadFile(input.Path()))
	return string(data)
}

func (input Input) Yaml(out any) {
	util.Assert(out != nil, util.Msg("decoding `%s` requires an output", input.name))
	util.ReadYaml(input.Path(), out)
}

// Run tests in a directory based on a file glob.
//
// Each input `name.in` is checked against `name.out` (text lines) and/or
// `name.out.yaml` (structured data). Missing expectations are written from
// the actual output of a successful run.
type Runner struct {
	t       *testing.T
	inner   TestRunner
	rootDir string
	glob    string
}

func NewRunner(t *testing.T, dir string, runner TestRunner) Runner {
	path := util.Try(filepath.Abs(dir))
	return Runner{
		t:       t,
		inner:   runner,
		rootDir: path,
		glob:    "*.in",
	}
}

func (runner Runner) Run() (out []RunOutput) {
	failed := 0
	for _, it := range util.Glob(runner.rootDir, runner.glob) {
		run := RunOutput{
			t:     runner.t,
			root:  runner.rootDir,
			Name:  util.WithExtension(path.Base(it), ""),
			File:  it,
			Input: Input{path: runner.rootDir, name: it},
		}
		run.runSingle(runner.inner)
		out = append(out, run)

		if !run.Success {
			failed += 1
		}
	}

	if len(out) == 0 {
		runner.t.Logf("no test inputs matching `%s` in %s", runner.glob, runner.rootDir)
		runner.t.Fail()
	}

	if failed > 0 {
		runner.t.Logf("Failed %d out of %d tests", failed, len(out))
		runner.t.Fail()
	}

	for _, it := range out {
		it.OutputDetails()
	}

	return
}

type RunOutput struct {
	t    *testing.T
	root string

	Name    string
	File    string
	Success bool

	Input  Input
	Output Output

	Expected     any
	ExpectOutput []string
	ActualOutput []string
}

func (run *RunOutput) outFile() string {
	return filepath.Join(run.root, util.WithExtension(run.File, ".out"))
}

func (run *RunOutput) outYaml() string {
	return run.outFile() + ".yaml"
}

func (run *RunOutput) runSingle(runner TestRunner) {
	output := runner.Run(run.Input)
	if output.Error == nil && output.StdErr != "" {
		output.Error = fmt.Errorf("test generated error output")
	}
	run.Output = output

	expectText := util.ReadText(run.outFile())
	run.ExpectOutput = util.TrimLines(util.Lines(expectText))
	run.ActualOutput = util.TrimLines(util.Lines(output.StdOut))

	if expected := util.ReadYaml(run.outYaml(), nil); expected != nil {
		run.Expected = expected
	}

	run.checkResult()
}

func (run *RunOutput) checkResult() {
	run.Success = run.Output.Error == nil

	hasOutFiles := false
	if run.Success && len(run.ExpectOutput) > 0 && !Rewrite {
		hasOutFiles = true
		run.Success = len(run.ExpectOutput) == len(run.ActualOutput)
		for i := 0; run.Success && i < len(run.ActualOutput); i++ {
			run.Success = run.ExpectOutput[i] == run.ActualOutput[i]
		}
	}

	if run.Success && run.Expected != nil && !Rewrite {
		hasOutFiles = true
		run.Success = assert.EqualValues(run.t, run.Expected, run.Output.Data, "output for %s", run.Name)
	}

	hasActualOutput := len(run.ActualOutput) > 0
	hasDataOutput := run.Output.Data != nil
	if run.Success && (!hasOutFiles || Rewrite) && (hasActualOutput || hasDataOutput) {
		if hasActualOutput {
			util.WriteText(run.outFile(), run.Output.StdOut)
		}
		if hasDataOutput {
			util.WriteYaml(run.outYaml(), run.Output.Data)
		}
	}

	if run.Success {
		run.t.Logf("[TEST] %s... PASS", run.Name)
	} else if run.Output.Error != nil {
		run.t.Logf("[TEST] %s... ERROR: %v", run.Name, run.Output.Error)
	} else {
		run.t.Logf("[TEST] %s... FAIL", run.Name)
	}
}

// OutputDetails logs the expected/actual diff and error output of a failed run.
func (run RunOutput) OutputDetails() {
	hasDetails := (!run.Success && run.Output.Error == nil) || run.Output.StdErr != ""
	if !hasDetails {
		return
	}

	var out strings.Builder
	out.WriteString("\n==============================================\n")
	out.WriteString("# " + run.Name)
	out.WriteString("\n==============================================\n\n")

	output := run.Output
	if output.StdErr != "" && len(run.ActualOutput) == 0 {
		out.WriteString("  - No output\n")
	} else if len(run.ExpectOutput) > 0 {
		diff := Diff(run.ExpectOutput, run.ActualOutput)
		if diff != "" {
			out.WriteString("  - Expected to Actual output diff (- / +):\n\n")
			out.WriteString(util.Indent(strings.Join(util.TrimLines(util.Lines(diff)), "\n"), "      ") + "\n")
		}
	}

	if output.StdErr != "" {
		out.WriteString("\n  - Error output:\n\n")
		out.WriteString(util.Indent(strings.Join(util.TrimLines(util.Lines(output.StdErr)), "\n"), "      ") + "\n")
	}

	run.t.Log(out.String())
}

// Diff renders a unified line diff from expected to actual, empty if equal.
func Diff(expected, actual []string) string {
	withBreaks := func(lines []string) (out []string) {
		for _, it := range lines {
			out = append(out, it+"\n")
		}
		return out
	}

	diff := difflib.UnifiedDiff{
		A:        withBreaks(expected),
		B:        withBreaks(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	util.NoError(err, "rendering output diff")
	return text
}

package tester_test

import (
	"os"
	"strings"
	"testing"

	"axlab.dev/variant/tester"
	"github.com/stretchr/testify/require"
)

func TestMakeDir(t *testing.T) {
	test := require.New(t)

	dir, err := tester.TryMakeDir("tester-dir", map[string]string{
		"empty.in":            "",
		"run/numbers.in":      "let x = 1",
		"run/numbers.out":     "x == 1 => true",
		"deep/a/b/c/value.in": "null",
		"indented.in": `
			let doc = {a: 1}
			doc == null
				# nested
		`,
		"tabs.in": "\n\tA\n\t\tB\n",
	})

	test.NoError(err)
	test.DirExists(dir.DirPath())
	test.Contains(dir.DirPath(), "tester-dir")
	test.True(strings.HasPrefix(dir.DirPath(), os.TempDir()))

	check := func(name, text string) {
		data, err := os.ReadFile(dir.Path(name))
		test.NoError(err, name)
		test.Equal(text, string(data), name)
	}

	check("empty.in", "")
	check("run/numbers.in", "let x = 1")
	check("run/numbers.out", "x == 1 => true")
	check("deep/a/b/c/value.in", "null")
	check("indented.in", "let doc = {a: 1}\ndoc == null\n    # nested")
	check("tabs.in", "A\n    B")

	dir.Delete()
	test.NoDirExists(dir.DirPath())
}

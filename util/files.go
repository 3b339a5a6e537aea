package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const RegexpIgnoreCase = "(?i)"

// Glob lists files under root matching a glob pattern, relative to root and
// using forward slashes. Patterns without a `/` match against the file name
// only; `?` and `*` never cross a directory separator and `(a|b)` groups are
// kept as alternations.
func Glob(root, pattern string) (out []string) {
	root = Try(filepath.Abs(root))
	isPath := strings.Contains(pattern, "/")
	anchor := "^"
	if isPath {
		anchor = ""
	}

	re := regexp.MustCompile(RegexpIgnoreCase + anchor + "(" + GlobRegex(pattern) + ")$")
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		path = Relative(root, path)
		path = strings.Replace(path, "\\", "/", -1)

		var name string
		if isPath {
			name = path
		} else {
			name = d.Name()
		}

		if re.MatchString(name) {
			out = append(out, path)
		}
		return nil
	})
	return out
}

func GlobRegex(pattern string) string {
	var output []string

	next, runes := ' ', []rune(pattern)
	for len(runes) > 0 {
		next, runes = runes[0], runes[1:]
		switch next {
		case '/', '\\':
			output = append(output, `[/\\]`)
		case '?':
			output = append(output, `[^/\\]`)
		case '*':
			output = append(output, `[^/\\]*`)
		case '(', ')', '|':
			output = append(output, string(next))
		default:
			output = append(output, regexp.QuoteMeta(string(next)))
		}
	}
	return strings.Join(output, "")
}

func Relative(base, path string) string {
	fullBase, err := filepath.Abs(base)
	NoError(err, "getting absolute base path for relative")

	fullPath, err := filepath.Abs(path)
	NoError(err, "getting absolute path for relative")

	rel, err := filepath.Rel(fullBase, fullPath)
	NoError(err, "getting relative path")
	return rel
}

func WithExtension(filename string, ext string) string {
	out := strings.TrimSuffix(filename, filepath.Ext(filename))
	return out + ext
}

// ReadText returns the file contents, or an empty string if it does not exist.
func ReadText(filename string) string {
	out, err := os.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		NoError(err, "reading file text")
	}
	return string(out)
}

// ReadYaml decodes a YAML file into output, returning nil when the file does
// not exist. A nil output decodes into a generic value.
func ReadYaml(filename string, output any) any {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		NoError(err, "reading YAML file")
	}

	if output == nil {
		var generic any
		NoError(yaml.Unmarshal(data, &generic), "decoding YAML file")
		return generic
	}

	NoError(yaml.Unmarshal(data, output), "decoding YAML file")
	return output
}

func WriteText(filepath string, text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	err := os.WriteFile(filepath, ([]byte)(text), fs.ModePerm)
	NoError(err, "WriteText failed")
}

func WriteYaml(filepath string, data any) {
	out, err := yaml.Marshal(data)
	NoError(err, "WriteYaml serialization failed")
	WriteText(filepath, string(out))
}

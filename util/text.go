package util

import (
	"regexp"
	"strings"
	"unicode"
)

// Columns per leading tab when normalizing text.
const TabWidth = 4

var (
	lineBreakRE  = regexp.MustCompile(`\r\n?|\n`)
	leadingTabRE = regexp.MustCompile(`^\t+`)
)

// Lines splits text on `\n`, `\r\n` and `\r`.
func Lines(input string) []string {
	return lineBreakRE.Split(input, -1)
}

// TrimLines removes trailing blanks from each line, in place, and drops
// trailing empty lines.
func TrimLines(lines []string) []string {
	for i, it := range lines {
		lines[i] = strings.TrimRightFunc(it, unicode.IsSpace)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Text normalizes an indented multi-line literal: leading empty lines are
// skipped, leading tabs expand to TabWidth spaces and the indentation of
// the first line is removed from every line.
func Text(input string) string {
	lines := TrimLines(Lines(input))
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return ""
	}

	for i, it := range lines {
		lines[i] = leadingTabRE.ReplaceAllStringFunc(it, func(tabs string) string {
			return strings.Repeat(" ", len(tabs)*TabWidth)
		})
	}

	first := lines[0]
	prefix := first[:len(first)-len(strings.TrimLeftFunc(first, unicode.IsSpace))]
	for i, it := range lines {
		lines[i] = strings.TrimPrefix(it, prefix)
	}
	return strings.Join(lines, "\n")
}

// Indent prefixes every line of the text.
func Indent(text, prefix string) string {
	lines := Lines(text)
	for i, it := range lines {
		lines[i] = prefix + it
	}
	return strings.Join(lines, "\n")
}

package script

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Lexer splits a source into tokens. Words, line breaks and comments are
// built in; numbers, string literals and symbols are configured.
type Lexer struct {
	Comment  string
	symbolRE *regexp.Regexp
	symbols  []string
	matchers []matcher
}

type matcher func(span *Span) (bool, Token)

func NewLexer() *Lexer {
	return &Lexer{}
}

// ScriptLexer is the lexer for comparison scripts.
func ScriptLexer() *Lexer {
	lex := NewLexer()
	lex.Comment = "#"
	lex.MatchNumbers()
	lex.MatchStrings()
	lex.AddSymbols("==", "!=", "<=", ">=", "<", ">", "=")
	return lex
}

// MatchNumbers accepts Go style integer and float literals, with an optional
// leading minus and a trailing type suffix.
func (lex *Lexer) MatchNumbers() {
	lex.MatchRE(TokenNumber, `-?0[xX][_0-9A-Fa-f]+([iu](8|16|32|64)?)?`)
	lex.MatchRE(TokenNumber, `-?[0-9][_0-9]*(\.[0-9][_0-9]*)?([eE][-+]?[0-9][_0-9]*)?[_A-Za-z0-9]*`)
}

// MatchStrings accepts double quoted strings with escapes and back quoted
// raw strings on a single line.
func (lex *Lexer) MatchStrings() {
	lex.MatchRE(TokenLiteral, `"([^"\\\r\n]|\\.)*"`)
	lex.MatchRE(TokenLiteral, "`[^`\r\n]*`")
}

func (lex *Lexer) MatchRE(kind TokenKind, re string) {
	if !strings.HasPrefix(re, "^") {
		re = "^" + re
	}
	regex := regexp.MustCompile(re)
	lex.matchers = append(lex.matchers, func(span *Span) (ok bool, out Token) {
		size := len(regex.FindString(span.Text()))
		if size > 0 {
			return true, NewToken(kind, span, size)
		}
		return
	})
}

// AddSymbols registers symbols, always matching the longest one first.
func (lex *Lexer) AddSymbols(symbols ...string) {
	lex.symbols = append(lex.symbols, symbols...)
	sort.SliceStable(lex.symbols, func(a, b int) bool {
		return len(lex.symbols[a]) > len(lex.symbols[b])
	})

	re := strings.Builder{}
	re.WriteString("^(")
	for n, it := range lex.symbols {
		if n > 0 {
			re.WriteString("|")
		}
		re.WriteString(regexp.QuoteMeta(it))
	}
	re.WriteString(")")
	lex.symbolRE = regexp.MustCompile(re.String())
}

func (lex *Lexer) MatchSymbol(span *Span) (ok bool, out Token) {
	if len(lex.symbols) == 0 {
		return
	}

	size := len(lex.symbolRE.FindString(span.Text()))
	if size > 0 {
		return true, NewToken(TokenSymbol, span, size)
	}
	return
}

func IsSpace(chr rune) bool {
	if IsLineBreak(chr) {
		return false
	}
	return unicode.IsSpace(chr)
}

func IsLineBreak(chr rune) bool {
	return chr == '\r' || chr == '\n'
}

type IdPos int

const (
	ID_STA IdPos = iota
	ID_MID
)

func IsIdent(chr rune, pos IdPos) bool {
	if '0' <= chr && chr <= '9' {
		return pos > ID_STA
	}

	if chr == '_' || ('a' <= chr && chr <= 'z') || ('A' <= chr && chr <= 'Z') {
		return true
	}

	return unicode.IsLetter(chr)
}

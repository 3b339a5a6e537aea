package script

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type TokenKind string

const (
	TokenNone    TokenKind = ""
	TokenInvalid TokenKind = "Invalid"
	TokenBreak   TokenKind = "Break"
	TokenSymbol  TokenKind = "Symbol"
	TokenWord    TokenKind = "Word"
	TokenNumber  TokenKind = "Number"
	TokenLiteral TokenKind = "Literal"
	TokenComment TokenKind = "Comment"
)

type Token struct {
	Kind TokenKind
	Span Span
}

// NewToken cuts a token of the given length from the start of span.
func NewToken(kind TokenKind, span *Span, len int) Token {
	tokSpan := *span
	tokSpan.End = tokSpan.Sta + len
	span.Advance(len)
	return Token{
		Kind: kind,
		Span: tokSpan,
	}
}

func (tok Token) Text() string {
	return tok.Span.Text()
}

func (tok Token) Is(kind TokenKind, text string) bool {
	return tok.Kind == kind && tok.Text() == text
}

func (tok *Token) String() string {
	return fmt.Sprintf("<%s[%s] = %#v>", tok.Kind, tok.Span.String(), tok.Span.Text())
}

// Tokenize reads the whole source, stopping after the first invalid token.
func (lex *Lexer) Tokenize(src *Source) (out []Token) {
	span := src.Span()
	for !span.Empty() {
		tok := lex.Next(&span)
		if tok.Kind != TokenNone {
			out = append(out, tok)
		}
		if tok.Kind == TokenInvalid {
			break
		}
	}
	return out
}

// Next reads one token from span, skipping blanks. Returns a TokenNone at
// the end of the span.
func (lex *Lexer) Next(span *Span) (out Token) {
	span.SkipSpaces()
	if span.Empty() {
		return out
	}

	if ok, tok := span.tokenIf(TokenBreak, "\r\n"); ok {
		return tok
	}

	next := span.Peek()
	nextLen := utf8.RuneLen(next)
	if IsLineBreak(next) {
		return NewToken(TokenBreak, span, 1)
	}

	if lex.Comment != "" && strings.HasPrefix(span.Text(), lex.Comment) {
		out = NewToken(TokenComment, span, 0)
		out.Span.End += len(span.SkipLine())
		return out
	}

	if IsIdent(next, ID_STA) {
		out = NewToken(TokenWord, span, nextLen)
		out.Span.End += span.SkipWhile(func(chr rune) bool {
			return IsIdent(chr, ID_MID)
		})
		return out
	}

	for _, match := range lex.matchers {
		if ok, tok := match(span); ok {
			return tok
		}
	}

	if ok, tok := lex.MatchSymbol(span); ok {
		return tok
	}

	return NewToken(TokenInvalid, span, nextLen)
}

func (span *Span) tokenIf(kind TokenKind, match string) (ok bool, out Token) {
	if strings.HasPrefix(span.Text(), match) {
		return true, NewToken(kind, span, len(match))
	}
	return
}

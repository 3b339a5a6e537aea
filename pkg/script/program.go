package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"axlab.dev/variant/pkg/compare"
	"axlab.dev/variant/pkg/variant"
)

var (
	ErrSyntax    = errors.New("syntax error")
	ErrUndefined = errors.New("undefined name")
)

var literalWords = map[string]bool{
	"null":  true,
	"true":  true,
	"false": true,
}

// Outcome of a comparison statement.
type Outcome struct {
	Span   Span
	Op     compare.Op
	Result bool
}

func (out Outcome) String() string {
	return fmt.Sprintf("%s => %t", out.Span.Text(), out.Result)
}

// Program loads comparison scripts and runs them in load order. Names bound
// with `let` are shared by all sources of the program.
//
// A script has one statement per line:
//
//	let NAME = <yaml>
//	let NAME = raw <text>
//	NAME <op> <literal>
//	<literal> <op> NAME
//
// Not safe for concurrent use.
type Program struct {
	lexer    *Lexer
	tabWidth int
	basePath string
	sources  []*Source
	loaded   map[string]sourceItem
	pending  int
	names    map[string]variant.Value
}

type sourceItem struct {
	src *Source
	err error
}

func (prog *Program) SetBasePath(path string) {
	prog.basePath = path
}

func (prog *Program) SetTabWidth(tabWidth int) {
	prog.tabWidth = tabWidth
}

// Bind sets a name as if by a `let` statement.
func (prog *Program) Bind(name string, value variant.Value) {
	if prog.names == nil {
		prog.names = make(map[string]variant.Value)
	}
	prog.names[name] = value
}

func (prog *Program) Lookup(name string) (variant.Value, bool) {
	value, ok := prog.names[name]
	return value, ok
}

func (prog *Program) LoadString(name, text string) *Source {
	src := &Source{
		Name: name,
		Text: text,
		TabW: prog.tabWidth,
	}
	prog.sources = append(prog.sources, src)
	return src
}

// LoadSource reads a script file relative to the base path. Loading the same
// file again returns the first result.
func (prog *Program) LoadSource(file string) (src *Source, err error) {
	if prog.loaded == nil {
		prog.loaded = make(map[string]sourceItem)
	}

	base := prog.basePath
	if base == "" {
		base = "."
	}
	if base, err = filepath.Abs(base); err != nil {
		return
	}

	if !filepath.IsAbs(file) {
		file = filepath.Join(base, file)
	}
	if item, ok := prog.loaded[file]; ok {
		return item.src, item.err
	}

	var (
		name string
		text []byte
	)

	if name, err = filepath.Rel(base, file); err == nil {
		name = filepath.ToSlash(name)
		if text, err = os.ReadFile(file); err == nil {
			src = &Source{Name: name, Text: string(text), TabW: prog.tabWidth}
			prog.sources = append(prog.sources, src)
		}
	}

	if err != nil {
		err = fmt.Errorf("load %s: %w", file, err)
	}
	prog.loaded[file] = sourceItem{src, err}
	return
}

// Run executes the sources loaded since the last run. On error, returns the
// outcomes up to the failing statement.
func (prog *Program) Run() (out []Outcome, err error) {
	if prog.lexer == nil {
		prog.lexer = ScriptLexer()
	}

	for prog.pending < len(prog.sources) {
		src := prog.sources[prog.pending]
		prog.pending++

		run := runner{prog: prog, span: src.Span()}
		err = run.all(func(it Outcome) {
			out = append(out, it)
		})
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

type runner struct {
	prog *Program
	span Span
}

func (run *runner) next() Token {
	tok := run.prog.lexer.Next(&run.span)
	if tok.Kind == TokenNone {
		tok.Span = run.span
	}
	return tok
}

func (run *runner) all(emit func(Outcome)) error {
	for {
		tok := run.next()
		switch tok.Kind {
		case TokenNone:
			return nil
		case TokenBreak, TokenComment:
			continue
		}

		if tok.Is(TokenWord, "let") {
			if err := run.let(); err != nil {
				return err
			}
		} else {
			out, err := run.comparison(tok)
			if err != nil {
				return err
			}
			emit(out)
		}
	}
}

func (run *runner) let() error {
	name := run.next()
	if name.Kind != TokenWord || name.Text() == "let" || literalWords[name.Text()] {
		return syntaxError(name.Span, "expected a name after `let`")
	}

	eq := run.next()
	if !eq.Is(TokenSymbol, "=") {
		return syntaxError(eq.Span, "expected `=` after `let %s`", name.Text())
	}

	at := run.span
	text := strings.TrimSpace(run.span.SkipLine())
	if text == "" {
		return syntaxError(at, "missing value for `%s`", name.Text())
	}

	var value variant.Value
	if raw, ok := strings.CutPrefix(text, "raw"); ok && (raw == "" || IsSpace(rune(raw[0]))) {
		value = variant.OwnedRaw(strings.TrimSpace(raw))
	} else {
		var err error
		if value, err = variant.DecodeYAML([]byte(text)); err != nil {
			return fmt.Errorf("%s: %w: %v", at.Location(), ErrSyntax, err)
		}
	}

	run.prog.Bind(name.Text(), value)
	return nil
}

func (run *runner) comparison(lhs Token) (out Outcome, err error) {
	opTok := run.next()
	op, ok := compare.ParseOp(opTok.Text())
	if opTok.Kind != TokenSymbol || !ok {
		return out, syntaxError(opTok.Span, "expected a comparison operator after `%s`", lhs.Text())
	}

	rhs := run.next()
	switch rhs.Kind {
	case TokenNone, TokenBreak, TokenComment:
		return out, syntaxError(rhs.Span, "missing operand after `%s`", opTok.Text())
	}
	if end := run.next(); end.Kind != TokenNone && end.Kind != TokenBreak && end.Kind != TokenComment {
		return out, syntaxError(end.Span, "unexpected `%s` after comparison", end.Text())
	}

	lhsValue, lhsLit, err := run.operand(lhs)
	if err != nil {
		return out, err
	}
	rhsValue, rhsLit, err := run.operand(rhs)
	if err != nil {
		return out, err
	}

	out = Outcome{Span: lhs.Span.To(rhs.Span), Op: op}
	switch {
	case lhsValue != nil && rhsLit != nil:
		out.Result = compare.Eval(*lhsValue, op, rhsLit)
	case lhsLit != nil && rhsValue != nil:
		out.Result = compare.EvalLiteral(lhsLit, op, *rhsValue)
	case lhsValue != nil:
		return out, syntaxError(lhs.Span, "comparison between two names, one side must be a literal")
	default:
		return out, syntaxError(lhs.Span, "comparison between two literals, one side must be a name")
	}
	return out, nil
}

// operand resolves a token to either a bound value or a literal.
func (run *runner) operand(tok Token) (*variant.Value, compare.Literal, error) {
	switch tok.Kind {
	case TokenWord:
		if literalWords[tok.Text()] {
			break
		}
		value, ok := run.prog.Lookup(tok.Text())
		if !ok {
			return nil, nil, fmt.Errorf("%s: %w `%s`", tok.Span.Location(), ErrUndefined, tok.Text())
		}
		return &value, nil, nil
	case TokenNumber, TokenLiteral:
	default:
		return nil, nil, syntaxError(tok.Span, "unexpected `%s`", tok.Text())
	}

	lit, err := ParseLiteral(tok.Text())
	if err != nil {
		return nil, nil, syntaxError(tok.Span, "%v", err)
	}
	return nil, lit, nil
}

func syntaxError(span Span, msg string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", span.Location(), ErrSyntax, fmt.Sprintf(msg, args...))
}

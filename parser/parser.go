/*
File    : dartlint/parser/parser.go
*/

// Package parser turns a token stream into an ast.Program and a list of
// syntax diagnostics, recovering from errors by resynchronizing at the
// next statement boundary instead of aborting (spec.md §4.2).
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/diag"
	"github.com/akashmaji946/dartlint/token"
)

// Parser consumes a flat token slice produced by the lexer. It never
// mutates the slice and keeps no state beyond its own cursor and the
// diagnostics it collects, so a fresh
// Parser is safe to use from any goroutine as long as no two goroutines
// share one (spec.md §6).
type Parser struct {
	tokens []token.Token
	pos    int
	errs   diag.List
}

// New creates a Parser over tokens, which must end with an EOF token
// (the lexer's contract).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the full Program grammar and returns the resulting tree
// together with every syntax diagnostic collected along the way
// (spec.md §6: `parse(tokens) -> (ast, syntax_errors)`).
func Parse(tokens []token.Token) (*ast.Program, diag.List) {
	p := New(tokens)
	prog := p.parseProgram()
	return prog, p.errs
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		stmt := p.parseDeclarationOrStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// --- cursor primitives ---

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) check(k token.Kind) bool {
	return p.current().Kind == k
}

// peekKind returns the kind of the token `offset` positions ahead of the
// cursor, or EOF if that would run past the end of the stream.
func (p *Parser) peekKind(offset int) token.Kind {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return token.EOF
	}
	return p.tokens[i].Kind
}

// isIdentLike reports whether k may stand in name position: a plain
// identifier, or one of Dart's contextual keywords (`get`/`set`) that
// the covered subset gives no special getter/setter treatment to and
// so treats as an ordinary name (spec.md §4.1 "contextual keywords").
func isIdentLike(k token.Kind) bool {
	return k == token.IDENT || k == token.GET || k == token.SET
}

// expectName consumes a name-position token, accepting `get`/`set`
// alongside plain identifiers.
func (p *Parser) expectName(what string) (token.Token, bool) {
	if isIdentLike(p.current().Kind) {
		return p.advance(), true
	}
	p.errorHere("se esperaba %s", what)
	return token.Token{}, false
}

func (p *Parser) checkAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if p.checkAny(kinds...) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k, else records a
// syntax diagnostic at the current position and does not advance, so the
// caller's recovery logic decides what happens next.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	p.errorHere("se esperaba %s", what)
	return token.Token{}, false
}

func (p *Parser) errorHere(format string, args ...interface{}) {
	tok := p.current()
	if tok.Kind == token.EOF {
		// The cursor never moves past EOF, so a previous diagnostic at
		// EOF's own position means end of input was already reported.
		if n := len(p.errs); n > 0 && p.errs[n-1].Line == tok.Pos.Line && p.errs[n-1].Column == tok.Pos.Column {
			return
		}
		p.errs.SyntaxEOF(tok.Pos.Line, tok.Pos.Column)
		return
	}
	p.errs.Add(diag.Syntax, tok.Pos.Line, tok.Pos.Column, format, args...)
}

// synchronize discards tokens until it finds a plausible statement
// boundary: a `;` (which it also consumes), a `}`, or a token that
// starts a new statement. This keeps a single malformed statement from
// cascading into spurious diagnostics for the rest of the file
// (spec.md §4.2 "non-fatal recovery").
func (p *Parser) synchronize() {
	for !p.check(token.EOF) {
		if p.previous().Kind == token.SEMI {
			return
		}
		switch p.current().Kind {
		case token.RBRACE, token.VAR, token.FINAL, token.CONST, token.VOID,
			token.CLASS, token.IF, token.WHILE, token.DO, token.FOR,
			token.RETURN, token.BREAK, token.CONTINUE:
			return
		}
		p.advance()
	}
}

// parseDeclarationOrStatement is the Statement production's entry point;
// a thin wrapper that recovers to the next boundary on a nil/failed
// parse so one bad statement cannot take down the whole file.
func (p *Parser) parseDeclarationOrStatement() ast.Statement {
	start := p.pos
	stmt := p.parseStatement()
	if stmt == nil && p.pos == start {
		// parseStatement made no progress: force it forward so we don't
		// loop forever on an unrecognised token.
		p.errorHere("declaración o sentencia inesperada")
		p.advance()
		p.synchronize()
		return nil
	}
	return stmt
}

/*
File    : dartlint/parser/parser_expressions.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// parseExpression implements precedence climbing over the binary
// operator ladder in parser_precedence.go (spec.md §4.2 Expression).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseBinary(precNone + 1)
}

func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}
	for {
		prec := precedenceOf(p.current().Kind)
		if prec == precNone || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec + 1)
		if right == nil {
			p.errorHere("se esperaba una expresión después de '%s'", opTok.Lexeme)
			return left
		}
		left = &ast.BinOp{OpTok: opTok, Op: opTok.Kind, Left: left, Right: right}
	}
}

// parsePrimary handles every leaf and grouping production: literals,
// identifiers, calls, the receiver.method() input shape, list/map
// literals, and parenthesized expressions (spec.md §3 Expression leaves).
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current()

	switch tok.Kind {
	case token.NUMBER_INT:
		p.advance()
		return &ast.IntegerLit{Tok: tok, Value: tok.Value.Int}
	case token.NUMBER_DOUBLE:
		p.advance()
		return &ast.DoubleLit{Tok: tok, Value: tok.Value.Float}
	case token.STRING:
		p.advance()
		return &ast.StringLit{Tok: tok, Value: tok.Value.Str}
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Tok: tok, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Tok: tok, Value: false}
	case token.NULL:
		p.advance()
		return &ast.NullLit{Tok: tok}
	case token.LBRACKET:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseMapLit()
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		return &ast.Paren{Tok: tok, Inner: inner}
	case token.IDENT:
		return p.parseIdentLed(tok)
	}

	p.errorHere("se esperaba una expresión")
	return nil
}

// parseIdentLed disambiguates the three identifier-led expression shapes:
// a plain identifier reference, a call `name(args)`, and the
// receiver.method() input shape (spec.md §3 Call, Input).
func (p *Parser) parseIdentLed(tok token.Token) ast.Expression {
	p.advance()

	if p.check(token.DOT) {
		p.advance()
		methodTok, ok := p.expect(token.IDENT, "un nombre de método")
		if !ok {
			return &ast.Ident{Tok: tok, Name: tok.Lexeme}
		}
		if p.check(token.LPAREN) {
			p.advance()
			p.expect(token.RPAREN, "')'")
			return &ast.Input{Tok: tok, Receiver: tok.Lexeme, Method: methodTok.Lexeme}
		}
		p.errorHere("acceso a miembro no soportado")
		return &ast.Ident{Tok: tok, Name: tok.Lexeme}
	}

	if p.check(token.LPAREN) {
		p.advance()
		var args []ast.Expression
		if !p.check(token.RPAREN) {
			args = append(args, p.parseExpression())
			for p.match(token.COMMA) {
				args = append(args, p.parseExpression())
			}
		}
		p.expect(token.RPAREN, "')'")
		return &ast.Call{Tok: tok, Callee: tok.Lexeme, Args: args}
	}

	return &ast.Ident{Tok: tok, Name: tok.Lexeme}
}

func (p *Parser) parseListLit() ast.Expression {
	tok := p.advance() // '['
	var elems []ast.Expression
	if !p.check(token.RBRACKET) {
		elems = append(elems, p.parseExpression())
		for p.match(token.COMMA) {
			if p.check(token.RBRACKET) {
				break
			}
			elems = append(elems, p.parseExpression())
		}
	}
	p.expect(token.RBRACKET, "']'")
	return &ast.ListLit{Tok: tok, Elements: elems}
}

func (p *Parser) parseMapLit() ast.Expression {
	tok := p.advance() // '{'
	var entries []ast.MapEntry
	if !p.check(token.RBRACE) {
		entries = append(entries, p.parseMapEntry())
		for p.match(token.COMMA) {
			if p.check(token.RBRACE) {
				break
			}
			entries = append(entries, p.parseMapEntry())
		}
	}
	p.expect(token.RBRACE, "'}'")
	return &ast.MapLit{Tok: tok, Entries: entries}
}

func (p *Parser) parseMapEntry() ast.MapEntry {
	keyTok, ok := p.expect(token.STRING, "una clave de tipo texto")
	var key *ast.StringLit
	if ok {
		key = &ast.StringLit{Tok: keyTok, Value: keyTok.Value.Str}
	}
	p.expect(token.COLON, "':'")
	value := p.parseExpression()
	return ast.MapEntry{Key: key, Value: value}
}

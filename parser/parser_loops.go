/*
File    : dartlint/parser/parser_loops.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

func (p *Parser) parseWhile() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	body := p.parseBlockOrStatement()
	return &ast.While{Tok: tok, Cond: cond, Body: body}
}

func (p *Parser) parseDoWhile() ast.Statement {
	tok := p.advance()
	body := p.parseBlockOrStatement()
	p.expect(token.WHILE, "'while'")
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	p.expect(token.SEMI, "';'")
	return &ast.DoWhile{Tok: tok, Body: body, Cond: cond}
}

// parseFor disambiguates the classic three-clause for loop from the
// for-in loop by looking past the opening '(' for an `in` keyword
// (spec.md §3 For, ForIn).
func (p *Parser) parseFor() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN, "'('")

	if p.isForInLookahead() {
		return p.parseForInTail(tok)
	}
	return p.parseClassicForTail(tok)
}

// isForInLookahead reports whether the tokens just inside `for (` spell
// `var? IDENT in`.
func (p *Parser) isForInLookahead() bool {
	off := 0
	if p.peekKind(0) == token.VAR {
		off = 1
	}
	return p.peekKind(off) == token.IDENT && p.peekKind(off+1) == token.IN
}

func (p *Parser) parseForInTail(tok token.Token) ast.Statement {
	declaresVar := p.match(token.VAR)
	nameTok, _ := p.expect(token.IDENT, "un nombre de variable")
	p.expect(token.IN, "'in'")
	iterable := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	body := p.parseBlockOrStatement()
	return &ast.ForIn{Tok: tok, DeclaresVar: declaresVar, Name: nameTok.Lexeme, NameTok: nameTok, Iterable: iterable, Body: body}
}

func (p *Parser) parseClassicForTail(tok token.Token) ast.Statement {
	var init ast.Statement
	if !p.check(token.SEMI) {
		init = p.parseForInit()
	} else {
		p.advance() // bare ';'
	}

	var cond ast.Expression
	if !p.check(token.SEMI) {
		cond = p.parseExpression()
	}
	p.expect(token.SEMI, "';'")

	var update ast.Statement
	if !p.check(token.RPAREN) {
		update = p.parseForUpdate()
	}
	p.expect(token.RPAREN, "')'")

	body := p.parseBlockOrStatement()
	return &ast.For{Tok: tok, Init: init, Cond: cond, Update: update, Body: body}
}

// parseForInit parses the for loop's init clause and consumes its
// trailing ';', reusing the same declaration/assignment shapes as a
// regular statement.
func (p *Parser) parseForInit() ast.Statement {
	switch p.current().Kind {
	case token.VAR, token.FINAL, token.CONST:
		return p.parseVarDecl()
	case token.IDENT:
		if isIdentLike(p.peekKind(1)) {
			typeTok := p.advance()
			nameTok, _ := p.expectName("un nombre de variable")
			decl := &ast.VarDecl{DeclTok: typeTok, Declarator: typeTok.Lexeme, NameTok: nameTok, Name: nameTok.Lexeme}
			if p.match(token.ASSIGN) {
				decl.Initializer = p.parseExpression()
			}
			p.expect(token.SEMI, "';'")
			return decl
		}
		if p.peekKind(1) == token.ASSIGN {
			nameTok := p.advance()
			p.advance()
			expr := p.parseExpression()
			p.expect(token.SEMI, "';'")
			return &ast.Assign{NameTok: nameTok, Name: nameTok.Lexeme, Expr: expr}
		}
	}
	expr := p.parseExpression()
	p.expect(token.SEMI, "';'")
	return expr
}

// parseForUpdate parses the for loop's update clause, which is not
// terminated by ';' but by the closing ')'.
func (p *Parser) parseForUpdate() ast.Statement {
	if p.check(token.IDENT) && p.peekKind(1) == token.ASSIGN {
		nameTok := p.advance()
		p.advance()
		expr := p.parseExpression()
		return &ast.Assign{NameTok: nameTok, Name: nameTok.Lexeme, Expr: expr}
	}
	return p.parseExpression()
}

/*
File    : dartlint/parser/parser_statements.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// parseStatement dispatches on the current token's kind to the matching
// production (spec.md §4.2 Statement).
func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Kind {
	case token.VAR, token.FINAL, token.CONST:
		return p.parseVarDecl()
	case token.VOID:
		return p.parseFunction(true)
	case token.CLASS:
		return p.parseClassDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		tok := p.advance()
		p.expect(token.SEMI, "';'")
		return &ast.Break{Tok: tok}
	case token.CONTINUE:
		tok := p.advance()
		p.expect(token.SEMI, "';'")
		return &ast.Continue{Tok: tok}
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBracedBlock()
	case token.SEMI:
		p.advance()
		return nil
	case token.IDENT:
		return p.parseIdentLedStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarDecl parses `(var|final|const) name (= expr)? ;` — the explicit
// type-name form is handled separately by parseIdentLedStatement
// (spec.md §3 VarDecl).
func (p *Parser) parseVarDecl() ast.Statement {
	declTok := p.advance()
	nameTok, ok := p.expect(token.IDENT, "un nombre de variable")
	if !ok {
		p.synchronize()
		return nil
	}
	decl := &ast.VarDecl{DeclTok: declTok, Declarator: declTok.Lexeme, NameTok: nameTok, Name: nameTok.Lexeme}
	if p.match(token.ASSIGN) {
		decl.Initializer = p.parseExpression()
	}
	p.expect(token.SEMI, "';'")
	return decl
}

// parseIdentLedStatement resolves the ambiguity at an identifier-shaped
// statement start: an explicitly typed variable declaration
// (`Type name ...`), a typed function declaration (`Type name(...)`), a
// plain assignment (`name = expr;`), or a bare expression statement,
// which also covers the `print(expr);` shape (spec.md §4.2).
func (p *Parser) parseIdentLedStatement() ast.Statement {
	typeTok := p.current()

	if isIdentLike(p.peekKind(1)) {
		if p.peekKind(2) == token.LPAREN {
			return p.parseFunction(false)
		}
		p.advance() // type name
		nameTok, ok := p.expectName("un nombre de variable")
		if !ok {
			p.synchronize()
			return nil
		}
		decl := &ast.VarDecl{DeclTok: typeTok, Declarator: typeTok.Lexeme, NameTok: nameTok, Name: nameTok.Lexeme}
		if p.match(token.ASSIGN) {
			decl.Initializer = p.parseExpression()
		}
		p.expect(token.SEMI, "';'")
		return decl
	}

	if p.peekKind(1) == token.ASSIGN {
		nameTok := p.advance()
		p.advance() // '='
		expr := p.parseExpression()
		p.expect(token.SEMI, "';'")
		return &ast.Assign{NameTok: nameTok, Name: nameTok.Lexeme, Expr: expr}
	}

	return p.parseExpressionStatement()
}

// parseExpressionStatement parses a bare `expr;`, recognising the
// `print(expr)` call shape as a dedicated ast.Print node so the semantic
// pass can validate it specifically (spec.md §3 Print).
func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression()
	p.expect(token.SEMI, "';'")
	if expr == nil {
		return nil
	}
	if call, ok := expr.(*ast.Call); ok && call.Callee == "print" {
		return &ast.Print{Tok: call.Tok, NameTok: call.Tok, Name: call.Callee, Args: call.Args}
	}
	return expr
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.advance()
	var expr ast.Expression
	if !p.check(token.SEMI) {
		expr = p.parseExpression()
	}
	p.expect(token.SEMI, "';'")
	return &ast.Return{Tok: tok, Expr: expr}
}

// parseBracedBlock parses `{ StatementList }`, the only form that opens a
// new lexical scope (spec.md §4.2).
func (p *Parser) parseBracedBlock() *ast.Block {
	openTok, _ := p.expect(token.LBRACE, "'{'")
	block := &ast.Block{OpenTok: openTok, Braced: true}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt := p.parseDeclarationOrStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return block
}

// parseBlockOrStatement parses either an explicit brace block or a
// single bare statement, matching the StatementBlock production used by
// if/while/for/do bodies (spec.md §4.2).
func (p *Parser) parseBlockOrStatement() *ast.Block {
	if p.check(token.LBRACE) {
		return p.parseBracedBlock()
	}
	tok := p.current()
	stmt := p.parseDeclarationOrStatement()
	block := &ast.Block{OpenTok: tok, Braced: false}
	if stmt != nil {
		block.Statements = append(block.Statements, stmt)
	}
	return block
}

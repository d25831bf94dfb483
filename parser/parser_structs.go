/*
File    : dartlint/parser/parser_structs.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// parseClassDecl parses `class Name { member* }`, where each member is a
// field declaration or a method declaration (spec.md §3 Class). Dart's
// inheritance, mixins, and constructors are explicitly out of scope, so
// a class body is just a flat member list.
func (p *Parser) parseClassDecl() ast.Statement {
	tok := p.advance()
	nameTok, ok := p.expect(token.IDENT, "un nombre de clase")
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.LBRACE, "'{'")

	class := &ast.ClassDecl{Tok: tok, Name: nameTok.Lexeme}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		member := p.parseClassMember()
		if member != nil {
			class.Members = append(class.Members, member)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return class
}

// parseClassMember accepts the same field/method shapes as top-level
// statements, restricted to declarations: `var`/`final`/`const` fields,
// typed fields, and typed or void methods.
func (p *Parser) parseClassMember() ast.Statement {
	switch p.current().Kind {
	case token.VAR, token.FINAL, token.CONST:
		return p.parseVarDecl()
	case token.VOID:
		return p.parseFunction(true)
	case token.IDENT:
		if isIdentLike(p.peekKind(1)) {
			if p.peekKind(2) == token.LPAREN {
				return p.parseFunction(false)
			}
			typeTok := p.advance()
			nameTok, _ := p.expectName("un nombre de campo")
			decl := &ast.VarDecl{DeclTok: typeTok, Declarator: typeTok.Lexeme, NameTok: nameTok, Name: nameTok.Lexeme}
			if p.match(token.ASSIGN) {
				decl.Initializer = p.parseExpression()
			}
			p.expect(token.SEMI, "';'")
			return decl
		}
	}
	p.errorHere("se esperaba un miembro de clase")
	p.advance()
	return nil
}

/*
File    : dartlint/parser/parser_functions.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// parseFunction parses a function declaration in any of its three
// surface shapes: `void name(params) { body }`, `Type name(params) {
// body }`, or the arrow-bodied `Type name(params) => expr;` (spec.md §3
// Function, FunctionVoid, ArrowFunction).
func (p *Parser) parseFunction(isVoid bool) ast.Statement {
	tok := p.advance() // 'void' or the return-type identifier
	returnType := tok.Lexeme

	nameTok, ok := p.expectName("un nombre de función")
	if !ok {
		p.synchronize()
		return nil
	}

	p.expect(token.LPAREN, "'('")
	params := p.parseParams()
	p.expect(token.RPAREN, "')'")

	fn := &ast.Function{Tok: tok, ReturnType: returnType, Name: nameTok.Lexeme, NameTok: nameTok, Params: params, IsVoid: isVoid}

	if p.match(token.ARROW) {
		fn.IsArrow = true
		fn.ArrowExpr = p.parseExpression()
		p.expect(token.SEMI, "';'")
		return fn
	}

	fn.Body = p.parseBracedBlock()
	return fn
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.check(token.RPAREN) {
		return params
	}
	params = append(params, p.parseParam())
	for p.match(token.COMMA) {
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() ast.Param {
	typeTok, _ := p.expect(token.IDENT, "un tipo de parámetro")
	nameTok, _ := p.expect(token.IDENT, "un nombre de parámetro")
	return ast.Param{Type: typeTok.Lexeme, NameTok: nameTok, Name: nameTok.Lexeme}
}

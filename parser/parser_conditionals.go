/*
File    : dartlint/parser/parser_conditionals.go
*/
package parser

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// parseIf parses `if (cond) body (else if (cond) body)* (else body)?`.
// Each `else` attaches to the nearest still-open `if`, which falls out
// naturally because the recursive call happens inside the current
// if-statement's own parse, before control returns to any enclosing one
// (spec.md §4.2 dangling-else policy).
func (p *Parser) parseIf() ast.Statement {
	ifTok := p.advance()
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	then := p.parseBlockOrStatement()

	node := &ast.If{IfTok: ifTok, Cond: cond, Then: then}
	if p.check(token.ELSE) {
		node.Elif = p.parseElifChain()
	}
	return node
}

func (p *Parser) parseElifChain() *ast.ElifChain {
	elseTok := p.advance() // 'else'
	if p.check(token.IF) {
		ifTok := p.advance()
		p.expect(token.LPAREN, "'('")
		cond := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		block := p.parseBlockOrStatement()
		link := &ast.ElifChain{Tok: ifTok, Cond: cond, Block: block}
		if p.check(token.ELSE) {
			link.Next = p.parseElifChain()
		}
		return link
	}
	block := p.parseBlockOrStatement()
	return &ast.ElifChain{Tok: elseTok, Block: block}
}

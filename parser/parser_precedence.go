/*
File    : dartlint/parser/parser_precedence.go
*/
package parser

import "github.com/akashmaji946/dartlint/token"

// precedence levels, lowest to highest, for the binary operators covered
// by the Dart subset (spec.md §3 BinOp). Assignment is a statement, not
// an expression, so it never appears here.
const (
	precNone = iota
	precCoalesce
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
)

var binaryPrecedence = map[token.Kind]int{
	token.QQ:      precCoalesce,
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precEquality,
	token.NEQ:     precEquality,
	token.LT:      precRelational,
	token.GT:      precRelational,
	token.LE:      precRelational,
	token.GE:      precRelational,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
	token.TILDESL: precMultiplicative,
}

func precedenceOf(k token.Kind) int {
	if p, ok := binaryPrecedence[k]; ok {
		return p
	}
	return precNone
}

/*
File    : dartlint/sema/analyzer_returns.go
*/
package sema

import "github.com/akashmaji946/dartlint/ast"

// blockAlwaysReturns reports whether every control-flow path through b
// ends in a return statement. It only looks at `return` and fully
// covered if/else-if/else chains — loops are never assumed to run, so a
// return inside one doesn't count (spec.md §4.3 "return-reachability").
func blockAlwaysReturns(b *ast.Block) bool {
	if b == nil {
		return false
	}
	for _, stmt := range b.Statements {
		if statementAlwaysReturns(stmt) {
			return true
		}
	}
	return false
}

func statementAlwaysReturns(stmt ast.Statement) bool {
	switch n := stmt.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		return blockAlwaysReturns(n)
	case *ast.If:
		if n.Elif == nil {
			return false
		}
		return blockAlwaysReturns(n.Then) && elifChainAlwaysReturns(n.Elif)
	default:
		return false
	}
}

// elifChainAlwaysReturns reports whether the else/else-if tail, taken as
// a whole, is guaranteed to return: every link's block must return, and
// the chain must end in an unconditional `else` rather than trailing
// off after the last `else if`.
func elifChainAlwaysReturns(e *ast.ElifChain) bool {
	if e == nil {
		return false
	}
	if !blockAlwaysReturns(e.Block) {
		return false
	}
	if e.Cond == nil { // terminal else
		return true
	}
	return elifChainAlwaysReturns(e.Next)
}

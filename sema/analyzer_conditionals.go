/*
File    : dartlint/sema/analyzer_conditionals.go
*/
package sema

import "github.com/akashmaji946/dartlint/ast"

// visitIf validates the condition as bool-ish and walks the then-branch
// and the else/else-if chain, each in its own scope when braced
// (spec.md §4.3).
func (a *Analyzer) visitIf(n *ast.If) {
	a.checkBoolCondition(n.Cond, n.IfTok.Pos.Line)
	a.visitBlock(n.Then)
	a.visitElifChain(n.Elif)
}

func (a *Analyzer) visitElifChain(e *ast.ElifChain) {
	if e == nil {
		return
	}
	if e.Cond != nil {
		a.checkBoolCondition(e.Cond, e.Tok.Pos.Line)
	}
	a.visitBlock(e.Block)
	a.visitElifChain(e.Next)
}

// checkBoolCondition infers cond's type and reports a diagnostic when it
// is not bool-compatible, unless it could not be resolved at all.
func (a *Analyzer) checkBoolCondition(cond ast.Expression, line int) {
	t := a.inferType(cond)
	if t == TBool || t == TDynamic || t == TUnknown {
		return
	}
	a.diags.Semantic(line, "la condición debe ser de tipo 'bool', se encontró '%s'", t)
}

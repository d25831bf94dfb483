/*
File    : dartlint/sema/analyzer_loops.go
*/
package sema

import "github.com/akashmaji946/dartlint/ast"

// enterLoop/exitLoop bracket a loop body's visit so break/continue
// validation can tell whether it is lexically inside a loop (spec.md
// §4.3 "validate_break_continue").
func (a *Analyzer) enterLoop()  { a.loopDepth++ }
func (a *Analyzer) exitLoop()   { a.loopDepth-- }

func (a *Analyzer) visitWhile(n *ast.While) {
	a.checkBoolCondition(n.Cond, n.Tok.Pos.Line)
	a.enterLoop()
	a.visitBlock(n.Body)
	a.exitLoop()
}

func (a *Analyzer) visitDoWhile(n *ast.DoWhile) {
	a.enterLoop()
	a.visitBlock(n.Body)
	a.exitLoop()
	a.checkBoolCondition(n.Cond, n.Tok.Pos.Line)
}

// visitFor gives the loop's own control variables (the Init clause) a
// scope that spans Cond, Update, and Body, matching Dart's for-loop
// scoping (spec.md §4.3).
func (a *Analyzer) visitFor(n *ast.For) {
	a.scopes.push()
	defer a.scopes.pop()

	if n.Init != nil {
		a.visitStatement(n.Init)
	}
	if n.Cond != nil {
		a.checkBoolCondition(n.Cond, n.Tok.Pos.Line)
	}
	a.enterLoop()
	a.visitBlock(n.Body)
	a.exitLoop()
	if n.Update != nil {
		a.visitStatement(n.Update)
	}
}

// visitForIn declares (or resolves) the loop variable, requires the
// iterable to be a List, and validates the body in its own scope
// (spec.md §3 ForIn).
func (a *Analyzer) visitForIn(n *ast.ForIn) {
	iterType := a.inferType(n.Iterable)
	if iterType != TList && iterType != TDynamic && iterType != TUnknown {
		a.diags.Semantic(n.Tok.Pos.Line, "'in' espera una lista, se encontró '%s'", iterType)
	}

	a.scopes.push()
	defer a.scopes.pop()

	if n.DeclaresVar {
		sym := &Symbol{Name: n.Name, Type: TDynamic, Mutable: true, Declarator: "var", DeclPos: n.NameTok.Pos}
		a.scopes.declare(sym)
	} else if a.scopes.lookup(n.Name) == nil {
		a.diags.Semantic(n.NameTok.Pos.Line, "la variable '%s' no ha sido declarada", n.Name)
	}

	a.enterLoop()
	a.visitBlock(n.Body)
	a.exitLoop()
}

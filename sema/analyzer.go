/*
File    : dartlint/sema/analyzer.go
*/
package sema

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/diag"
)

// funcContext tracks the enclosing function while walking its body, so
// Return statements can be checked against the declared return type.
type funcContext struct {
	fn *ast.Function
}

// Analyzer holds everything needed for one semantic pass: a scope stack,
// a function table, the diagnostics collected so far, and the small
// amount of control-flow context (loop depth, enclosing function) that
// can't be read back out of the scope stack. A fresh Analyzer must be
// constructed per analysis; it keeps no state that could leak between
// unrelated programs (spec.md §6 "each instance isolated").
type Analyzer struct {
	scopes    *scopeStack
	functions map[string]Signature
	classes   map[string]*ast.ClassDecl
	diags     diag.List

	loopDepth int
	funcStack []*funcContext
}

// New creates an Analyzer ready to run over a fresh Program.
func New() *Analyzer {
	return &Analyzer{
		scopes:    newScopeStack(),
		functions: make(map[string]Signature),
		classes:   make(map[string]*ast.ClassDecl),
	}
}

// Analyze runs both phases over prog and returns the accumulated
// semantic diagnostics (spec.md §6: `analyze(ast) -> semantic_errors`).
func Analyze(prog *ast.Program) diag.List {
	a := New()
	a.collectFunctionSignatures(prog.Statements)
	a.collectClassDecls(prog.Statements)
	a.visitStatements(prog.Statements)
	return a.diags
}

func (a *Analyzer) collectClassDecls(stmts []ast.Statement) {
	for _, stmt := range stmts {
		if c, ok := stmt.(*ast.ClassDecl); ok {
			a.classes[c.Name] = c
		}
	}
}

func (a *Analyzer) visitStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		a.visitStatement(stmt)
	}
}

// visitBlock optionally pushes a new scope before walking a block's
// statements: only the explicit-brace form does, matching the
// lone-statement `if`/`while`/`for` bodies that must see the enclosing
// scope directly (spec.md §4.2 StatementBlock).
func (a *Analyzer) visitBlock(b *ast.Block) {
	if b == nil {
		return
	}
	if b.Braced {
		a.scopes.push()
		defer a.scopes.pop()
	}
	a.visitStatements(b.Statements)
}

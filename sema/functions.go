/*
File    : dartlint/sema/functions.go
*/
package sema

import "github.com/akashmaji946/dartlint/ast"

// Signature is a function's registered shape: its parameter types in
// order and its declared return type (ReturnType is "void" for
// FunctionVoid declarations).
type Signature struct {
	ReturnType string
	IsVoid     bool
	ParamTypes []string
}

// collectFunctionSignatures walks the whole tree once, before any
// validation, and registers every function's signature by name. This is
// Phase A: it lets Phase B resolve a call to a function declared later
// in the same scope — including direct and mutual recursion — without
// producing a false "undeclared" diagnostic (spec.md §4.3 "two-phase
// analysis").
func (a *Analyzer) collectFunctionSignatures(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ast.Function:
			sig := Signature{ReturnType: n.ReturnType, IsVoid: n.IsVoid}
			for _, p := range n.Params {
				sig.ParamTypes = append(sig.ParamTypes, p.Type)
			}
			if _, exists := a.functions[n.Name]; exists {
				a.diags.Semantic(n.NameTok.Pos.Line, "la función '%s' ya fue declarada", n.Name)
				continue
			}
			a.functions[n.Name] = sig
		case *ast.ClassDecl:
			a.collectFunctionSignatures(n.Members)
		}
	}
}

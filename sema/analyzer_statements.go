/*
File    : dartlint/sema/analyzer_statements.go
*/
package sema

import "github.com/akashmaji946/dartlint/ast"

// visitStatement dispatches every statement-level node to its validation
// logic, matching the shapes registered in ast.Statement (spec.md §4.3).
func (a *Analyzer) visitStatement(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case *ast.Assign:
		a.visitAssign(n)
	case *ast.If:
		a.visitIf(n)
	case *ast.While:
		a.visitWhile(n)
	case *ast.DoWhile:
		a.visitDoWhile(n)
	case *ast.For:
		a.visitFor(n)
	case *ast.ForIn:
		a.visitForIn(n)
	case *ast.Break:
		a.validateBreakContinue(n.Tok.Pos.Line, "break")
	case *ast.Continue:
		a.validateBreakContinue(n.Tok.Pos.Line, "continue")
	case *ast.Return:
		a.visitReturn(n)
	case *ast.Print:
		a.visitPrint(n)
	case *ast.Function:
		a.visitFunction(n)
	case *ast.ClassDecl:
		a.visitClassDecl(n)
	case *ast.Block:
		a.visitBlock(n)
	case ast.Expression:
		a.inferType(n)
	}
}

// validateBreakContinue reports an error when break/continue appears
// outside any enclosing loop (spec.md §4.3 "validate_break_continue").
func (a *Analyzer) validateBreakContinue(line int, what string) {
	if a.loopDepth == 0 {
		a.diags.Semantic(line, "'%s' usado fuera de un bucle", what)
	}
}

// visitVarDecl implements register_variable: infers the initializer's
// type (if any), resolves the declared type, checks the declared type
// against the initializer, and adds the symbol to the current scope,
// reporting redeclaration-within-scope as an error (spec.md §4.3
// "register_variable").
func (a *Analyzer) visitVarDecl(n *ast.VarDecl) {
	var initType string
	hasInit := n.Initializer != nil
	if hasInit {
		initType = a.inferType(n.Initializer)
	}
	declaredType := resolveDeclaredType(n.Declarator, initType, hasInit)

	if hasInit && n.Declarator != "var" && n.Declarator != "final" && n.Declarator != "const" {
		if !canImplicitlyConvert(initType, declaredType) {
			if isNumeric(initType) && isNumeric(declaredType) {
				a.diags.Semantic(n.NameTok.Pos.Line, "de '%s' a '%s' puede requerir una conversión explícita", initType, declaredType)
			} else {
				a.diags.Semantic(n.NameTok.Pos.Line, "inicialización incompatible: no se puede asignar un valor de tipo '%s' a una variable de tipo '%s'", initType, declaredType)
			}
		}
	}

	mutable := n.Declarator != "final" && n.Declarator != "const"
	sym := &Symbol{Name: n.Name, Type: declaredType, Mutable: mutable, Declarator: n.Declarator, DeclPos: n.NameTok.Pos}
	if !a.scopes.declare(sym) {
		a.diags.Semantic(n.NameTok.Pos.Line, "la variable '%s' ya fue declarada en este ámbito", n.Name)
	}
}

// visitAssign implements validate_assignment: the target must already
// be declared, must be mutable, and the value's type must be
// implicitly convertible to the target's declared type (spec.md §4.3
// "validate_assignment").
func (a *Analyzer) visitAssign(n *ast.Assign) {
	valueType := a.inferType(n.Expr)
	sym := a.scopes.lookup(n.Name)
	if sym == nil {
		a.diags.Semantic(n.NameTok.Pos.Line, "la variable '%s' no ha sido declarada", n.Name)
		return
	}
	if !sym.Mutable {
		a.diags.Semantic(n.NameTok.Pos.Line, "no se puede reasignar la variable '%s' declarada como %s", n.Name, sym.Declarator)
		return
	}
	if !canImplicitlyConvert(valueType, sym.Type) {
		if isNumeric(valueType) && isNumeric(sym.Type) {
			a.diags.Semantic(n.NameTok.Pos.Line, "de '%s' a '%s' puede requerir una conversión explícita", valueType, sym.Type)
		} else {
			a.diags.Semantic(n.NameTok.Pos.Line, "asignación incompatible: no se puede asignar un valor de tipo '%s' a '%s' de tipo '%s'", valueType, n.Name, sym.Type)
		}
	}
}

// visitReturn validates Return against its enclosing function: a void
// function must not return a value, a non-void function's returned
// value must be convertible to its declared return type, and any
// return outside a function is an error (spec.md §4.3).
func (a *Analyzer) visitReturn(n *ast.Return) {
	if len(a.funcStack) == 0 {
		a.diags.Semantic(n.Tok.Pos.Line, "'return' usado fuera de una función")
		return
	}
	ctx := a.funcStack[len(a.funcStack)-1]

	if ctx.fn.IsVoid {
		if n.Expr != nil {
			a.diags.Semantic(n.Tok.Pos.Line, "la función '%s' es void y no debe retornar un valor", ctx.fn.Name)
		}
		return
	}
	if n.Expr == nil {
		a.diags.Semantic(n.Tok.Pos.Line, "la función '%s' debe retornar un valor de tipo '%s'", ctx.fn.Name, ctx.fn.ReturnType)
		return
	}
	valueType := a.inferType(n.Expr)
	if !canImplicitlyConvert(valueType, ctx.fn.ReturnType) {
		a.diags.Semantic(n.Tok.Pos.Line, "la función '%s' declara retornar '%s' pero retorna '%s'", ctx.fn.Name, ctx.fn.ReturnType, valueType)
	}
}

// visitPrint implements the print-call validation named in spec.md
// §4.3: the callee must be spelled exactly `print` and must receive
// exactly one argument.
func (a *Analyzer) visitPrint(n *ast.Print) {
	if n.Name != "print" {
		a.diags.Semantic(n.Tok.Pos.Line, "función desconocida '%s'", n.Name)
	}
	if len(n.Args) != 1 {
		a.diags.Semantic(n.Tok.Pos.Line, "'print' espera exactamente un argumento, se recibieron %d", len(n.Args))
	}
	for _, arg := range n.Args {
		a.inferType(arg)
	}
}

// visitFunction validates one function body in its own scope: it binds
// every parameter, tracks the enclosing-function context used by
// Return, and — for non-void, non-arrow functions — requires that every
// control-flow path through the body end in a return (spec.md §4.3
// "return-reachability").
func (a *Analyzer) visitFunction(n *ast.Function) {
	a.scopes.push()
	defer a.scopes.pop()

	for _, p := range n.Params {
		sym := &Symbol{Name: p.Name, Type: p.Type, Mutable: true, Declarator: p.Type, DeclPos: p.NameTok.Pos}
		if !a.scopes.declare(sym) {
			a.diags.Semantic(p.NameTok.Pos.Line, "el parámetro '%s' ya fue declarado", p.Name)
		}
	}

	ctx := &funcContext{fn: n}
	a.funcStack = append(a.funcStack, ctx)
	defer func() { a.funcStack = a.funcStack[:len(a.funcStack)-1] }()

	if n.IsArrow {
		valueType := a.inferType(n.ArrowExpr)
		if !n.IsVoid && !canImplicitlyConvert(valueType, n.ReturnType) {
			a.diags.Semantic(n.NameTok.Pos.Line, "la función '%s' declara retornar '%s' pero retorna '%s'", n.Name, n.ReturnType, valueType)
		}
		return
	}

	a.visitStatements(n.Body.Statements)

	if !n.IsVoid && !blockAlwaysReturns(n.Body) {
		a.diags.Semantic(n.NameTok.Pos.Line, "la función '%s' no retorna un valor en todos los posibles caminos", n.Name)
	}
}

// visitClassDecl validates a class body in its own scope: fields become
// symbols local to that scope and methods are validated as ordinary
// functions. Fields are not visible outside the class body and there is
// no instance (`this`-qualified) access (spec.md §10 Open Question: no
// this-qualified member access). Method signatures are registered here
// as `Class.method` and, by collectFunctionSignatures, under their bare
// name in the global function table, so a bare call to a method name
// resolves anywhere in the program.
func (a *Analyzer) visitClassDecl(n *ast.ClassDecl) {
	a.scopes.push()
	defer a.scopes.pop()

	for _, member := range n.Members {
		if fn, ok := member.(*ast.Function); ok {
			sig := Signature{ReturnType: fn.ReturnType, IsVoid: fn.IsVoid}
			for _, p := range fn.Params {
				sig.ParamTypes = append(sig.ParamTypes, p.Type)
			}
			a.functions[n.Name+"."+fn.Name] = sig
		}
	}

	for _, member := range n.Members {
		a.visitStatement(member)
	}
}

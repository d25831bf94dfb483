/*
File    : dartlint/sema/analyzer_expressions.go
*/
package sema

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/token"
)

// inferType computes an expression's static type, reporting diagnostics
// for anything it cannot resolve (undeclared identifiers, unknown
// functions, ill-typed operators) and falling back to TUnknown so
// callers can keep checking the surrounding tree without cascading
// errors (spec.md §4.3 "infer_type").
func (a *Analyzer) inferType(expr ast.Expression) string {
	switch n := expr.(type) {
	case *ast.IntegerLit:
		return TInt
	case *ast.DoubleLit:
		return TDouble
	case *ast.StringLit:
		return TString
	case *ast.BoolLit:
		return TBool
	case *ast.NullLit:
		return TNull
	case *ast.Ident:
		return a.inferIdent(n)
	case *ast.ListLit:
		for _, el := range n.Elements {
			a.inferType(el)
		}
		return TList
	case *ast.MapLit:
		for _, e := range n.Entries {
			a.inferType(e.Value)
		}
		return TMap
	case *ast.Paren:
		return a.inferType(n.Inner)
	case *ast.Call:
		return a.inferCall(n)
	case *ast.Input:
		return a.inferInput(n)
	case *ast.BinOp:
		return a.inferBinOp(n)
	default:
		return TUnknown
	}
}

func (a *Analyzer) inferIdent(n *ast.Ident) string {
	sym := a.scopes.lookup(n.Name)
	if sym == nil {
		a.diags.Semantic(n.Tok.Pos.Line, "el identificador '%s' no ha sido declarado", n.Name)
		return TUnknown
	}
	return sym.Type
}

// inferCall validates a plain function call — distinct from the `print`
// shape, which the parser routes to ast.Print instead.
func (a *Analyzer) inferCall(n *ast.Call) string {
	sig, ok := a.functions[n.Callee]
	if !ok {
		a.diags.Semantic(n.Tok.Pos.Line, "función desconocida '%s'", n.Callee)
		for _, arg := range n.Args {
			a.inferType(arg)
		}
		return TUnknown
	}
	if len(n.Args) != len(sig.ParamTypes) {
		a.diags.Semantic(n.Tok.Pos.Line, "'%s' espera %d argumento(s), se recibieron %d", n.Callee, len(sig.ParamTypes), len(n.Args))
	}
	for i, arg := range n.Args {
		argType := a.inferType(arg)
		if i < len(sig.ParamTypes) && !canImplicitlyConvert(argType, sig.ParamTypes[i]) {
			a.diags.Semantic(n.Tok.Pos.Line, "el argumento %d de '%s' debe ser de tipo '%s', se encontró '%s'", i+1, n.Callee, sig.ParamTypes[i], argType)
		}
	}
	if sig.IsVoid {
		return TDynamic
	}
	return sig.ReturnType
}

// inferInput validates the only external collaborator the covered
// subset understands: `stdin.readLineSync()`, which always yields a
// String (spec.md §7 "out-of-scope external collaborators" — everything
// else through a receiver.method() call is unsupported).
func (a *Analyzer) inferInput(n *ast.Input) string {
	if n.Receiver != "stdin" || n.Method != "readLineSync" {
		a.diags.Semantic(n.Tok.Pos.Line, "llamada de entrada no soportada: '%s.%s()'", n.Receiver, n.Method)
		return TUnknown
	}
	return TString
}

func (a *Analyzer) inferBinOp(n *ast.BinOp) string {
	left := a.inferType(n.Left)
	right := a.inferType(n.Right)
	return a.validateBinaryOperation(n.Op, left, right, n.OpTok.Pos.Line)
}

// validateBinaryOperation implements validate_binary_operations: it
// checks the operand types against the operator's expected category and
// returns the operator's result type. A `null` operand or a mismatched
// arithmetic operator yields TUnknown so the mismatch isn't reported
// twice further up the tree; a mismatched comparison or logical operator
// still yields TBool (spec.md §4.3 "validate_binary_operations").
func (a *Analyzer) validateBinaryOperation(op token.Kind, left, right string, line int) string {
	permissive := left == TDynamic || left == TUnknown || right == TDynamic || right == TUnknown

	if (left == TNull || right == TNull) && op != token.QQ && op != token.EQ && op != token.NEQ {
		a.diags.Semantic(line, "operación con 'null' sin verificación")
		return TUnknown
	}

	switch op {
	case token.PLUS:
		if left == TString && right == TString {
			return TString
		}
		if permissive {
			return TDynamic
		}
		if isNumeric(left) && isNumeric(right) {
			return numericResult(left, right)
		}
		a.diags.Semantic(line, "el operador '+' no admite los tipos '%s' y '%s'", left, right)
		return TUnknown

	case token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.TILDESL:
		if permissive {
			return TDynamic
		}
		if isNumeric(left) && isNumeric(right) {
			if op == token.SLASH {
				return TDouble
			}
			return numericResult(left, right)
		}
		a.diags.Semantic(line, "el operador '%s' requiere operandos numéricos, se encontraron '%s' y '%s'", op, left, right)
		return TUnknown

	case token.LT, token.GT, token.LE, token.GE:
		if permissive {
			return TBool
		}
		if isNumeric(left) && isNumeric(right) {
			return TBool
		}
		a.diags.Semantic(line, "el operador '%s' requiere operandos numéricos, se encontraron '%s' y '%s'", op, left, right)
		return TBool

	case token.EQ, token.NEQ:
		return TBool

	case token.AND, token.OR:
		if permissive {
			return TBool
		}
		if left == TBool && right == TBool {
			return TBool
		}
		a.diags.Semantic(line, "el operador '%s' requiere operandos de tipo 'bool', se encontraron '%s' y '%s'", op, left, right)
		return TBool

	case token.QQ:
		if left == TNull {
			return right
		}
		return left
	}

	return TUnknown
}

// numericResult returns the promoted numeric type of a binary op over
// two numeric operands: int only stays int when both sides are int,
// otherwise the wider of double/num wins.
func numericResult(left, right string) string {
	if left == TInt && right == TInt {
		return TInt
	}
	if left == TNum || right == TNum {
		return TNum
	}
	return TDouble
}

/*
File    : dartlint/sema/types.go
*/

// Package sema implements the semantic analysis pass: scoping,
// declare-before-use, mutability, binary-operator typing, return
// reachability, and control-flow context validation for the Dart subset
// covered by the lexer and parser (spec.md §4.3).
package sema

// Type tags used throughout the analyzer. These are plain string labels,
// not a real type-lattice, matching the scope of a static-analysis front
// end rather than a type checker for the full language (spec.md §3 Type
// model).
const (
	TInt     = "int"
	TDouble  = "double"
	TNum     = "num"
	TString  = "String"
	TBool    = "bool"
	TNull    = "Null"
	TList    = "List"
	TMap     = "Map"
	TDynamic = "dynamic"
	TUnknown = "unknown"
)

// canImplicitlyConvert reports whether a value of type `from` may be
// used where `to` is expected without an explicit cast: identity, any
// numeric type widening to num, and int widening to double. `dynamic`
// and `unknown` are permissive on both sides so a single unresolved
// sub-expression doesn't cascade into unrelated diagnostics (spec.md
// §4.3 "implicit conversion rules").
func canImplicitlyConvert(from, to string) bool {
	if from == to {
		return true
	}
	if from == TDynamic || to == TDynamic {
		return true
	}
	if from == TUnknown || to == TUnknown {
		return true
	}
	if to == TNum && (from == TInt || from == TDouble) {
		return true
	}
	if to == TDouble && from == TInt {
		return true
	}
	return false
}

// resolveDeclaredType maps a VarDecl's Declarator token text to the
// initial declared type: `var`/`final`/`const` defer to the
// initializer's inferred type (or dynamic if there is none), anything
// else is an explicit type name taken verbatim (spec.md §3 VarDecl).
func resolveDeclaredType(declarator string, initializerType string, hasInitializer bool) string {
	switch declarator {
	case "var", "final", "const":
		if hasInitializer {
			return initializerType
		}
		return TDynamic
	default:
		return declarator
	}
}

// isNumeric reports whether t is one of the built-in numeric types.
func isNumeric(t string) bool {
	return t == TInt || t == TDouble || t == TNum
}

/*
File    : dartlint/dartanalysis/dartanalysis.go
*/

// Package dartanalysis is the façade that wires the lexer, parser, and
// semantic analyzer into the three operations named in spec.md §6:
// Tokenize, ParseSyntax, and AnalyzeSemantic, plus the convenience
// AnalyzeAll that runs the whole pipeline and merges every diagnostic in
// pass order. It mirrors original_source/analyzer_service.py's
// single-entry-point shape, adapted to Go's explicit multi-return idiom
// instead of one aggregate result object.
package dartanalysis

import (
	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/diag"
	"github.com/akashmaji946/dartlint/lexer"
	"github.com/akashmaji946/dartlint/parser"
	"github.com/akashmaji946/dartlint/sema"
	"github.com/akashmaji946/dartlint/token"
)

// Tokenize runs the lexer alone, useful for tooling that only needs the
// token stream (e.g. syntax highlighting).
func Tokenize(source string) ([]token.Token, diag.List) {
	return lexer.Tokenize(source)
}

// ParseSyntax tokenizes and parses source, returning the (possibly
// partial) AST together with every lexical and syntax diagnostic found,
// in that order.
func ParseSyntax(source string) (*ast.Program, diag.List) {
	tokens, lexErrs := lexer.Tokenize(source)
	prog, syntaxErrs := parser.Parse(tokens)
	return prog, lexErrs.Merge(syntaxErrs)
}

// AnalyzeSemantic runs the semantic pass over an already-parsed program.
// Callers that want the full pipeline from source text should use
// AnalyzeAll instead.
func AnalyzeSemantic(prog *ast.Program) diag.List {
	return sema.Analyze(prog)
}

// Result bundles everything produced by AnalyzeAll: the final token
// stream, the parsed tree, and the full diagnostic list in
// Lexical-then-Syntax-then-Semantic order (spec.md §5 "Ordering").
type Result struct {
	Tokens      []token.Token
	Program     *ast.Program
	Diagnostics diag.List
}

// AnalyzeAll runs the complete lexer → parser → semantic-analyzer
// pipeline over raw Dart source text (spec.md §6 "analyze_all").
func AnalyzeAll(source string) Result {
	tokens, lexErrs := lexer.Tokenize(source)
	prog, syntaxErrs := parser.Parse(tokens)
	semErrs := sema.Analyze(prog)

	return Result{
		Tokens:      tokens,
		Program:     prog,
		Diagnostics: lexErrs.Merge(syntaxErrs).Merge(semErrs),
	}
}

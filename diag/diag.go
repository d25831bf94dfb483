/*
File    : dartlint/diag/diag.go
*/

// Package diag defines the diagnostic model shared by the lexer, parser,
// and semantic analyzer. A Diagnostic is a structured, recoverable report
// of something wrong with the source text; none of the three passes ever
// aborts because of one, they only accumulate them (spec.md §7).
package diag

import "fmt"

// Kind identifies which pass produced a Diagnostic.
type Kind string

const (
	// Lexical marks a diagnostic raised while tokenizing (an illegal character).
	Lexical Kind = "Lexical"
	// Syntax marks a diagnostic raised while parsing (unexpected token, unexpected EOF),
	// or by the lexer for an unterminated string literal.
	Syntax Kind = "Syntax"
	// Semantic marks a diagnostic raised while walking the AST.
	Semantic Kind = "Semantic"
)

// Diagnostic is one structured error report: its kind, its source
// position, and a free-form message that must contain the line number
// (spec.md §4.4). Column is optional — semantic diagnostics carry only a
// line and leave it at 0.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

// String renders the diagnostic using the historical Spanish report
// convention from spec.md §6: lexical diagnostics name the line/column
// inline, syntax diagnostics are prefixed "Error sintáctico en línea N:",
// semantic diagnostics are prefixed "Línea N:" or "Error semántico:".
func (d Diagnostic) String() string {
	switch d.Kind {
	case Syntax:
		return fmt.Sprintf("Error sintáctico en línea %d: %s", d.Line, d.Message)
	case Semantic:
		return fmt.Sprintf("Línea %d: %s", d.Line, d.Message)
	default:
		return d.Message
	}
}

// List is an ordered collection of diagnostics, appended in source order
// within a pass (spec.md §5 "Ordering").
type List []Diagnostic

// Add appends a new diagnostic built from a Lexical/Syntax/Semantic kind,
// line, column and formatted message.
func (l *List) Add(kind Kind, line, column int, format string, args ...interface{}) {
	*l = append(*l, Diagnostic{
		Kind:    kind,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	})
}

// Lexical appends a lexical diagnostic naming the illegal character, its
// line, and its column, matching spec.md §4.1's failure model.
func (l *List) Lexical(line, column int, ch byte) {
	l.Add(Lexical, line, column, "carácter ilegal '%c' en línea %d, columna %d", ch, line, column)
}

// Syntax appends a syntax diagnostic in the "Error sintáctico" convention.
func (l *List) Syntax(line, column int, format string, args ...interface{}) {
	l.Add(Syntax, line, column, format, args...)
}

// SyntaxEOF appends the single end-of-file diagnostic spec.md §4.2 requires
// when input ends mid-construct.
func (l *List) SyntaxEOF(line, column int) {
	l.Add(Syntax, line, column, "fin de archivo inesperado")
}

// Semantic appends a semantic diagnostic at the given line.
func (l *List) Semantic(line int, format string, args ...interface{}) {
	l.Add(Semantic, line, 0, format, args...)
}

// HasErrors reports whether any diagnostic was collected.
func (l List) HasErrors() bool {
	return len(l) > 0
}

// Merge returns a new List containing this list's diagnostics followed by
// other's, preserving the Lexical-then-Syntax-then-Semantic cross-pass
// ordering spec.md §5 mandates when the caller merges lists itself.
func (l List) Merge(other List) List {
	merged := make(List, 0, len(l)+len(other))
	merged = append(merged, l...)
	merged = append(merged, other...)
	return merged
}

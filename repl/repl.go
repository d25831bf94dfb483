/*
File    : dartlint/repl/repl.go
*/

// Package repl implements dartlint's interactive mode: a line-oriented
// loop that runs the full lexer → parser → semantic-analyzer pipeline
// over each line of input and reports its diagnostics immediately,
// adapted from the teacher interpreter's own REPL to analysis instead of
// evaluation (spec.md §7 "Interactive mode").
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/dartlint/dartanalysis"
	"github.com/akashmaji946/dartlint/diag"
)

var (
	blueColor    = color.New(color.FgBlue)
	yellowColor  = color.New(color.FgYellow)
	redColor     = color.New(color.FgRed)
	magentaColor = color.New(color.FgMagenta)
	greenColor   = color.New(color.FgGreen)
	cyanColor    = color.New(color.FgCyan)
)

// colorFor picks the diagnostic color by pass, matching cmd/dartlint's
// file-mode printer: lexical in yellow, syntax in red, semantic in
// magenta.
func colorFor(kind diag.Kind) *color.Color {
	switch kind {
	case diag.Lexical:
		return yellowColor
	case diag.Semantic:
		return magentaColor
	default:
		return redColor
	}
}

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "dartlint interactive mode")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of Dart code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-analyze-print loop until the user exits or input
// ends. Each line is analyzed independently: dartlint's analyzer never
// keeps state across calls, so there is no session-wide scope to reset
// (spec.md §6 "each instance isolated").
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Adiós!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Adiós!\n"))
			break
		}

		rl.SaveHistory(line)
		r.analyzeLine(writer, line)
	}
}

// analyzeLine runs the full pipeline over one line of input and prints
// its diagnostics, or a success message when there are none.
func (r *Repl) analyzeLine(writer io.Writer, line string) {
	result := dartanalysis.AnalyzeAll(line)
	if len(result.Diagnostics) == 0 {
		greenColor.Fprintln(writer, "OK: sin diagnósticos")
		return
	}
	for _, d := range result.Diagnostics {
		colorFor(d.Kind).Fprintln(writer, d.String())
	}
}

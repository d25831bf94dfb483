/*
File    : dartlint/cmd/dartlint/main.go
*/

// Command dartlint is the driver for the static analyzer: it runs in
// one-shot file mode when given a path, or starts an interactive mode
// otherwise (spec.md §7 "External Interfaces").
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/dartlint/dartanalysis"
	"github.com/akashmaji946/dartlint/diag"
	"github.com/akashmaji946/dartlint/repl"
)

var (
	redColor     = color.New(color.FgRed)
	yellowColor  = color.New(color.FgYellow)
	magentaColor = color.New(color.FgMagenta)
	cyanColor    = color.New(color.FgCyan)
	greenColor   = color.New(color.FgGreen)
)

// colorFor picks the diagnostic color by pass: lexical errors in yellow,
// syntax errors in red, semantic errors in magenta, so a glance at the
// output tells which stage of the pipeline found the problem.
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

const (
	version = "v1.0.0"
	author  = "akashmaji946/dartlint"
	license = "MIT"
	prompt  = "dartlint >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `      _            _   _ _       _
     | |          | | | (_)     | |
   __| | __ _ _ __| |_| |_ _ __ | |_
  / _` + "`" + ` |/ _` + "`" + ` | '__| __| | | '_ \| __|
 | (_| | (_| | |  | |_| | | | | | |_
  \__,_|\__,_|_|   \__|_|_|_| |_|\__|
`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			os.Exit(runFile(os.Args[1]))
		}
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdout)
}

// runFile reads and analyzes a single Dart source file, printing every
// diagnostic and returning the process exit code: 0 when the analysis
// found nothing wrong, 1 otherwise (spec.md §6 "Driver exit-code
// convention").
func runFile(fileName string) int {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] no se pudo leer '%s': %v\n", fileName, err)
		return 1
	}

	result := dartanalysis.AnalyzeAll(string(content))
	if len(result.Diagnostics) == 0 {
		greenColor.Printf("%s: sin diagnósticos\n", fileName)
		return 0
	}

	for _, d := range result.Diagnostics {
		colorFor(d.Kind).Println(d.String())
	}
	return 1
}

func showHelp() {
	cyanColor.Println("dartlint - Analizador estático para un subconjunto de Dart")
	cyanColor.Println("")
	cyanColor.Println("USO:")
	yellowColor.Println("  dartlint                  Iniciar el modo interactivo")
	yellowColor.Println("  dartlint <archivo.dart>    Analizar un archivo")
	yellowColor.Println("  dartlint --help            Mostrar esta ayuda")
	yellowColor.Println("  dartlint --version         Mostrar la versión")
}

func showVersion() {
	cyanColor.Printf("dartlint %s (%s)\n", version, license)
}

/*
File    : goloxmix/cmd/goloxmix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the goloxmix interpreter. It provides
two modes of operation:
 1. REPL mode (default): an interactive read-eval-print loop
 2. File mode: execute a goloxmix source file given on the command line

The interpreter uses a scanner-parser-interpreter pipeline, matching the
classic tree-walking architecture: source text is tokenized, tokens are
parsed into an AST, and the AST is walked directly rather than compiled.
*/
package main

import (
	"os"

	"github.com/akashmaji946/goloxmix/interpreter"
	"github.com/akashmaji946/goloxmix/parser"
	"github.com/akashmaji946/goloxmix/repl"
	"github.com/akashmaji946/goloxmix/scanner"
	"github.com/fatih/color"
)

// VERSION is the current release of the goloxmix interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "goloxmix >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ___  ___  _     _____  __  __ ___ __  __
  / _ \/ _ \| |   / _ \ \/ /_|/  \\ \/  |\ \/ /
 / /_\/ /_\/| |  / /_\/\  /(_)/\/\/ \  / \  /
/ /_\\/ /_\\| |_ / /_\\ / /  / /  \ \/ / / /
\____/\____/|___|\____//_/   \/    \/ /_/
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Exit codes mirror the classic jlox convention: 0 success, 64 command
// misuse, 65 a scanning or parsing failure, 70 a runtime failure.
const (
	exitOK        = 0
	exitUsage     = 64
	exitDataError = 65
	exitSoftware  = 70
)

func main() {
	if len(os.Args) > 2 {
		redColor.Fprintln(os.Stderr, "Usage: goloxmix [path-to-file]")
		os.Exit(exitUsage)
	}
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		default:
			os.Exit(runFile(os.Args[1]))
		}
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("goloxmix - a tree-walking interpreter for a small scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  goloxmix                    Start interactive REPL mode")
	yellowColor.Println("  goloxmix <path-to-file>     Execute a goloxmix source file")
	yellowColor.Println("  goloxmix --help             Display this help message")
	yellowColor.Println("  goloxmix --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                       Exit the REPL")
	yellowColor.Println("  .ast <code>                 Print a line's parse tree")
}

func showVersion() {
	cyanColor.Println("goloxmix - a tree-walking interpreter for a small scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile scans, parses, and interprets one source file, returning the
// exit code the process should terminate with.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		return exitUsage
	}

	tokens, scanErr := scanner.New(string(source)).ScanTokens()
	if scanErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", scanErr)
		return exitDataError
	}

	statements, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitDataError
	}

	interp := interpreter.New()
	if err := interp.Interpret(statements); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return exitSoftware
	}
	return exitOK
}

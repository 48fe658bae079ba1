/*
File    : goloxmix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive Read-Eval-Print Loop for
// goloxmix. Each line the user enters is scanned, parsed, and interpreted
// against one interpreter.Interpreter that persists across the session —
// `var x = 1;` on one line stays visible on the next. A bad line reports
// its error and returns the user to the prompt; it never ends the
// session.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/goloxmix/internal/astprinter"
	"github.com/akashmaji946/goloxmix/interpreter"
	"github.com/akashmaji946/goloxmix/parser"
	"github.com/akashmaji946/goloxmix/scanner"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's fixed banner and prompt text.
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

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to goloxmix!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Type '.ast <code>' to print a line's parse tree")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop over an interpreter that survives for the
// whole session, reading lines via readline until EOF, '.exit', or a
// readline error.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	interp := interpreter.New()
	interp.Stdout = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		if rest, ok := strings.CutPrefix(line, ".ast "); ok {
			printAST(writer, rest)
			continue
		}

		runLine(writer, interp, line)
	}
}

// printAST renders the parse tree for one line without executing it, for
// the ".ast <code>" debug command.
func printAST(writer io.Writer, src string) {
	tokens, err := scanner.New(src).ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	statements, errs := parser.New(tokens).Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}
	writer.Write([]byte(astprinter.Print(statements)))
}

// runLine scans, parses, and interprets one line of input, printing any
// error in red and otherwise letting print statements speak for
// themselves — as in file mode there is no implicit "result" value to
// echo, since a REPL line is a statement list, not a single expression.
func runLine(writer io.Writer, interp *interpreter.Interpreter, line string) {
	tokens, err := scanner.New(line).ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	statements, errs := parser.New(tokens).Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if err := interp.Interpret(statements); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}

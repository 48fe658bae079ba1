/*
File    : goloxmix/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/goloxmix/interpreter"
)

func TestRunLine_PersistsStateAcrossLines(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New()
	interp.Stdout = &out

	runLine(&out, interp, "var x = 1;")
	runLine(&out, interp, "x = x + 1;")
	runLine(&out, interp, "print x;")

	assert.Equal(t, "2\n", out.String())
}

func TestRunLine_ReportsRuntimeErrorAndKeepsGoing(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New()
	interp.Stdout = &out

	runLine(&out, interp, "print undeclared;")
	assert.Contains(t, out.String(), "Runtime error")

	out.Reset()
	runLine(&out, interp, "print 1;")
	assert.Equal(t, "1\n", out.String())
}

func TestRunLine_ReportsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New()
	interp.Stdout = &out

	runLine(&out, interp, "print 1")
	assert.Contains(t, out.String(), "Syntax error")
}

func TestPrintAST_RendersTree(t *testing.T) {
	var out bytes.Buffer
	printAST(&out, "1 + 2;")
	assert.Contains(t, out.String(), "Binary")
}

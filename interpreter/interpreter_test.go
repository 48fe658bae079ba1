/*
File    : goloxmix/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/goloxmix/parser"
	"github.com/akashmaji946/goloxmix/scanner"
)

// run scans, parses, and interprets src against a fresh interpreter,
// returning everything `print` wrote plus any error from Interpret.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, err := scanner.New(src).ScanTokens()
	assert.NoError(t, err)
	statements, errs := parser.New(tokens).Parse()
	assert.Empty(t, errs)

	var out bytes.Buffer
	in := New()
	in.Stdout = &out
	err = in.Interpret(statements)
	return out.String(), err
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	assert.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_MixedStringAndNumberPlusConcatenatesStringified(t *testing.T) {
	out, err := run(t, `
		var a = "hi ";
		var b = 2;
		print a + b;
		print 2 + " apples";
	`)
	assert.NoError(t, err)
	assert.Equal(t, "hi 2\n2 apples\n", out)
}

func TestInterpret_PlusOnIncompatibleTypesIsRuntimeError(t *testing.T) {
	_, err := run(t, `print true + 1;`)
	assert.Error(t, err)
}

func TestInterpret_VariableScopingAndShadowing(t *testing.T) {
	out, err := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print x;
		}
		print x;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_AssignmentMutatesEnclosingScope(t *testing.T) {
	out, err := run(t, `
		var x = 1;
		{
			x = 2;
		}
		print x;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, err := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	assert.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_TruthinessOverAllTypes(t *testing.T) {
	out, err := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsy";
		if (nil) print "nil is truthy"; else print "nil is falsy";
		if ("") print "empty string is truthy"; else print "empty string is falsy";
	`)
	assert.NoError(t, err)
	assert.Equal(t, "zero is truthy\nnil is falsy\nempty string is truthy\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_LogicalShortCircuit(t *testing.T) {
	out, err := run(t, `
		fun sideEffect() {
			print "called";
			return true;
		}
		if (false and sideEffect()) {}
		if (true or sideEffect()) {}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestInterpret_FunctionReturnValue(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_FunctionNoReturnYieldsNil(t *testing.T) {
	out, err := run(t, `
		fun noop() {}
		print noop();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestInterpret_ClosureCapturesDeclaringEnvironment(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_RecursiveFunction(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print undeclared;`)
	assert.Error(t, err)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	assert.Error(t, err)
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	assert.Error(t, err)
}

func TestInterpret_ClockNativeReturnsNumber(t *testing.T) {
	out, err := run(t, `
		var t = clock();
		if (t > 0) print "ok"; else print "bad";
	`)
	assert.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestInterpret_EqualityReflexiveAcrossTypes(t *testing.T) {
	out, err := run(t, `
		print 1 == 1;
		print 1 == "1";
		print "1" == 1;
		print nil == nil;
		print nil == false;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "true\ntrue\ntrue\ntrue\nfalse\n", out)
}

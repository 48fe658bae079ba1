/*
File    : goloxmix/callable/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable defines the representation of a user-declared goloxmix
// function as a runtime value. It deliberately holds no Call method: that
// would need to execute a function body, which needs the interpreter's
// statement evaluator, and interpreter already needs to construct and
// invoke Function values. Keeping the call logic in the interpreter
// package breaks that cycle; this package only stores what a function
// literal is.
package callable

import (
	"fmt"

	"github.com/akashmaji946/goloxmix/ast"
	"github.com/akashmaji946/goloxmix/environment"
	"github.com/akashmaji946/goloxmix/token"
)

// Function is a user-declared goloxmix function: its declared name (empty
// for none, reserved for a future anonymous-function extension), its
// parameter list, its body, and the environment that was active at the
// point the function was declared. Closure is captured once, at
// declaration time, not at call time — this is what lets a function see
// the bindings visible in its enclosing scope even after that scope's
// declaring block has finished running.
type Function struct {
	Name    string
	Params  []token.Token
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	if f.Name == "" {
		return "<fn anonymous>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity is the number of parameters the function was declared with.
func (f *Function) Arity() int { return len(f.Params) }

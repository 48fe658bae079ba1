/*
File    : goloxmix/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks a parsed goloxmix program. It owns the
// global environment, the currently active scope, and the dispatch logic
// for every statement and expression node in package ast. Non-local
// control transfer (return) and runtime failures are both reported as
// ordinary Go errors returned up the call chain — the interpreter never
// uses panic/recover for control flow.
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/goloxmix/ast"
	"github.com/akashmaji946/goloxmix/callable"
	"github.com/akashmaji946/goloxmix/environment"
	"github.com/akashmaji946/goloxmix/natives"
	"github.com/akashmaji946/goloxmix/token"
	"github.com/akashmaji946/goloxmix/value"
)

// RuntimeError is a failure during evaluation: a type mismatch, an
// undefined variable, a call to a non-callable value, or an arity
// mismatch. Line identifies the operator or call-site token responsible,
// so the driver can report "Runtime error: MSG [line L]".
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s [line %d]", e.Message, e.Line)
}

func runtimeErr(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Message: fmt.Sprintf(format, args...)}
}

// returnSignal carries a `return` statement's value up through the
// recursive exec calls to the enclosing call's invocation point. It
// implements error so it can travel through the same (value, error)
// return channel every other statement uses, without a third return
// value or a Completion wrapper type; callFunction unwraps it into the
// call's result, and Interpret turns one that reaches the top level into
// a RuntimeError. This mirrors how the standard library uses sentinel errors
// such as io.EOF for a similar "expected, non-failure interruption".
type returnSignal struct {
	Value value.Value
	Line  int
}

func (*returnSignal) Error() string { return "return outside of a function" }

// Interpreter holds the state of one running goloxmix program: the fixed
// global scope (where natives live) and whichever environment is
// currently active as statement execution descends into blocks, loops,
// and function calls.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Stdout  io.Writer
}

// New constructs an Interpreter whose global scope already holds the
// native functions registered by natives.Register, with stdout as the
// destination for `print`.
func New() *Interpreter {
	globals := environment.New()
	natives.Register(globals)
	return &Interpreter{Globals: globals, env: globals, Stdout: os.Stdout}
}

// Interpret executes a full program: the statements produced by parsing
// one source file or one REPL entry. It returns the first RuntimeError
// encountered, if any; statements already executed have already taken
// effect, matching the reference interpreter's lack of transactional
// rollback.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.exec(stmt); err != nil {
			var rs *returnSignal
			if errors.As(err, &rs) {
				return &RuntimeError{Line: rs.Line, Message: "return outside of a function"}
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expr)
		return err
	case *ast.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil
	case *ast.VarStmt:
		return in.execVar(s)
	case *ast.BlockStmt:
		return in.execBlock(s.Statements, environment.NewEnclosed(in.env))
	case *ast.IfStmt:
		return in.execIf(s)
	case *ast.WhileStmt:
		return in.execWhile(s)
	case *ast.FunctionStmt:
		return in.execFunctionDecl(s)
	case *ast.ReturnStmt:
		return in.execReturn(s)
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

func (in *Interpreter) execVar(s *ast.VarStmt) error {
	var v value.Value = value.Nil{}
	if s.Initializer != nil {
		var err error
		v, err = in.eval(s.Initializer)
		if err != nil {
			return err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

// execBlock runs statements against a freshly supplied environment and
// restores the interpreter's previous environment on every exit path —
// normal completion, a propagated return, or a runtime error alike —
// mirroring the resource-scoping discipline the teacher's scope package
// applies around every nested evaluation.
func (in *Interpreter) execBlock(statements []ast.Stmt, blockEnv *environment.Environment) error {
	previous := in.env
	in.env = blockEnv
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execIf(s *ast.IfStmt) error {
	cond, err := in.eval(s.Condition)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return in.exec(s.Then)
	}
	if s.Else != nil {
		return in.exec(s.Else)
	}
	return nil
}

func (in *Interpreter) execWhile(s *ast.WhileStmt) error {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := in.exec(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) execFunctionDecl(s *ast.FunctionStmt) error {
	fn := &callable.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: in.env,
	}
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) execReturn(s *ast.ReturnStmt) error {
	var v value.Value = value.Nil{}
	if s.Value != nil {
		var err error
		v, err = in.eval(s.Value)
		if err != nil {
			return err
		}
	}
	return &returnSignal{Value: v, Line: s.Keyword.Line}
}

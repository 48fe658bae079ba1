/*
File    : goloxmix/interpreter/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"errors"

	"github.com/akashmaji946/goloxmix/ast"
	"github.com/akashmaji946/goloxmix/callable"
	"github.com/akashmaji946/goloxmix/environment"
	"github.com/akashmaji946/goloxmix/token"
	"github.com/akashmaji946/goloxmix/value"
)

func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Variable:
		v, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, runtimeErr(e.Name, "undefined variable '%s'", e.Name.Lexeme)
		}
		return v, nil
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	default:
		return nil, errors.New("interpreter: unhandled expression type")
	}
}

// literalValue converts the raw Go value the scanner/parser attached to a
// Literal node into a runtime value.Value.
func literalValue(v interface{}) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Nil{}
	case float64:
		return value.Number(t)
	case string:
		return value.String(t)
	case bool:
		return value.Bool(t)
	default:
		return value.Nil{}
	}
}

func (in *Interpreter) evalAssign(e *ast.Assign) (value.Value, error) {
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.env.Assign(e.Name.Lexeme, v); err != nil {
		return nil, runtimeErr(e.Name, "undefined variable '%s'", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, runtimeErr(e.Op, "operand must be a number")
		}
		return -n, nil
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	default:
		return nil, runtimeErr(e.Op, "unknown unary operator %q", e.Op.Lexeme)
	}
}

// evalLogical implements `and`/`or` short-circuiting: the right operand is
// only evaluated when the left one doesn't already decide the result. The
// result returned is the deciding operand itself, not coerced to Bool —
// `nil or "x"` yields `"x"`, not `true`.
func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	case token.Plus:
		return evalPlus(e.Op, left, right)
	}

	switch e.Op.Kind {
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, runtimeErr(e.Op, "operands must be numbers")
		}
		switch e.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Slash:
			if rn == 0 {
				return nil, runtimeErr(e.Op, "division by zero")
			}
			return ln / rn, nil
		case token.Greater:
			return value.Bool(ln > rn), nil
		case token.GreaterEqual:
			return value.Bool(ln >= rn), nil
		case token.Less:
			return value.Bool(ln < rn), nil
		case token.LessEqual:
			return value.Bool(ln <= rn), nil
		}
	}
	return nil, runtimeErr(e.Op, "unknown binary operator %q", e.Op.Lexeme)
}

// evalPlus implements `+` overloading: number addition when both operands
// are numbers, string concatenation when both are strings, and
// stringify-then-concatenate when one side is a string and the other a
// number — `"hi " + 2` yields `"hi 2"`. Any other operand pairing is a
// runtime error.
func evalPlus(op token.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return ls + rs, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rn, ok := right.(value.Number); ok {
			return ls + value.String(rn.String()), nil
		}
	}
	if ln, ok := left.(value.Number); ok {
		if rs, ok := right.(value.String); ok {
			return value.String(ln.String()) + rs, nil
		}
	}
	return nil, runtimeErr(op, "operands must be two numbers, two strings, or a string and a number")
}

func (in *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return in.callValue(e.Paren, callee, args)
}

// Call implements value.Caller so native functions can invoke goloxmix
// values without the value package importing this one.
func (in *Interpreter) Call(callee value.Value, args []value.Value) (value.Value, error) {
	return in.callValue(token.Token{}, callee, args)
}

func (in *Interpreter) callValue(paren token.Token, callee value.Value, args []value.Value) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Native:
		if len(args) != fn.Arity {
			return nil, runtimeErr(paren, "expected %d arguments but got %d", fn.Arity, len(args))
		}
		return fn.Fn(in, args)
	case *callable.Function:
		return in.callFunction(paren, fn, args)
	default:
		return nil, runtimeErr(paren, "can only call functions")
	}
}

// callFunction binds args to fn's parameters in a fresh environment
// enclosed by fn's captured Closure — not the caller's environment — runs
// the body, and unwraps a propagated returnSignal into its carried value.
// A body that runs off the end without a `return` yields nil.
func (in *Interpreter) callFunction(paren token.Token, fn *callable.Function, args []value.Value) (value.Value, error) {
	if len(args) != fn.Arity() {
		return nil, runtimeErr(paren, "expected %d arguments but got %d", fn.Arity(), len(args))
	}

	callEnv := environment.NewEnclosed(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.Body, callEnv)
	if err == nil {
		return value.Nil{}, nil
	}

	var rs *returnSignal
	if errors.As(err, &rs) {
		return rs.Value, nil
	}
	return nil, err
}

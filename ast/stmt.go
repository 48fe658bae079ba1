/*
File    : goloxmix/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/goloxmix/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (ExpressionStmt) stmtNode() {}

// PrintStmt evaluates Expr and writes its rendered form followed by a
// newline to the interpreter's output.
type PrintStmt struct {
	Expr Expr
}

func (PrintStmt) stmtNode() {}

// VarStmt declares Name in the current environment. Initializer is nil
// when the declaration has no `= expr` clause, in which case the variable
// is bound to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (VarStmt) stmtNode() {}

// BlockStmt introduces a new lexical scope: a fresh environment is created
// for Statements, chained to the environment active at the block's entry,
// and restored on every exit path once the block finishes.
type BlockStmt struct {
	Statements []Stmt
}

func (BlockStmt) stmtNode() {}

// IfStmt is a conditional. Else is nil when there is no else-clause —
// this is a genuine optional branch in the AST, never a sentinel
// expression statement.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (IfStmt) stmtNode() {}

// WhileStmt loops Body while Condition evaluates truthy. The parser
// desugars `for` into a BlockStmt wrapping a WhileStmt; no separate For
// node exists in this package.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (WhileStmt) stmtNode() {}

// FunctionStmt declares a named user function. Arity equals len(Params).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (FunctionStmt) stmtNode() {}

// ReturnStmt raises the non-local return signal. Value is nil when the
// statement is a bare `return;`, which yields nil to the caller.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (ReturnStmt) stmtNode() {}

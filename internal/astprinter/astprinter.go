/*
File    : goloxmix/internal/astprinter/astprinter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package astprinter renders a parsed goloxmix program as an indented
// tree, for the REPL's ".ast" debug command. It walks ast.Stmt/ast.Expr
// with a type switch rather than a visitor interface, since the AST
// package defines no Accept method — adding one purely to support this
// debug printer would couple ast to a presentation concern it doesn't
// otherwise need.
package astprinter

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/goloxmix/ast"
)

const indentSize = 2

// Print renders statements as a multi-line indented tree.
func Print(statements []ast.Stmt) string {
	var buf bytes.Buffer
	for _, s := range statements {
		printStmt(&buf, s, 0)
	}
	return buf.String()
}

func writeLine(buf *bytes.Buffer, depth int, format string, args ...interface{}) {
	for i := 0; i < depth*indentSize; i++ {
		buf.WriteByte(' ')
	}
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
}

func printStmt(buf *bytes.Buffer, stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		writeLine(buf, depth, "ExpressionStmt")
		printExpr(buf, s.Expr, depth+1)
	case *ast.PrintStmt:
		writeLine(buf, depth, "PrintStmt")
		printExpr(buf, s.Expr, depth+1)
	case *ast.VarStmt:
		writeLine(buf, depth, "VarStmt %s", s.Name.Lexeme)
		if s.Initializer != nil {
			printExpr(buf, s.Initializer, depth+1)
		}
	case *ast.BlockStmt:
		writeLine(buf, depth, "BlockStmt")
		for _, inner := range s.Statements {
			printStmt(buf, inner, depth+1)
		}
	case *ast.IfStmt:
		writeLine(buf, depth, "IfStmt")
		printExpr(buf, s.Condition, depth+1)
		printStmt(buf, s.Then, depth+1)
		if s.Else != nil {
			printStmt(buf, s.Else, depth+1)
		}
	case *ast.WhileStmt:
		writeLine(buf, depth, "WhileStmt")
		printExpr(buf, s.Condition, depth+1)
		printStmt(buf, s.Body, depth+1)
	case *ast.FunctionStmt:
		writeLine(buf, depth, "FunctionStmt %s/%d", s.Name.Lexeme, len(s.Params))
		for _, inner := range s.Body {
			printStmt(buf, inner, depth+1)
		}
	case *ast.ReturnStmt:
		writeLine(buf, depth, "ReturnStmt")
		if s.Value != nil {
			printExpr(buf, s.Value, depth+1)
		}
	default:
		writeLine(buf, depth, "<unknown statement %T>", stmt)
	}
}

func printExpr(buf *bytes.Buffer, expr ast.Expr, depth int) {
	switch e := expr.(type) {
	case *ast.Literal:
		writeLine(buf, depth, "Literal %v", e.Value)
	case *ast.Variable:
		writeLine(buf, depth, "Variable %s", e.Name.Lexeme)
	case *ast.Assign:
		writeLine(buf, depth, "Assign %s", e.Name.Lexeme)
		printExpr(buf, e.Value, depth+1)
	case *ast.Unary:
		writeLine(buf, depth, "Unary %s", e.Op.Lexeme)
		printExpr(buf, e.Right, depth+1)
	case *ast.Binary:
		writeLine(buf, depth, "Binary %s", e.Op.Lexeme)
		printExpr(buf, e.Left, depth+1)
		printExpr(buf, e.Right, depth+1)
	case *ast.Logical:
		writeLine(buf, depth, "Logical %s", e.Op.Lexeme)
		printExpr(buf, e.Left, depth+1)
		printExpr(buf, e.Right, depth+1)
	case *ast.Grouping:
		writeLine(buf, depth, "Grouping")
		printExpr(buf, e.Inner, depth+1)
	case *ast.Call:
		writeLine(buf, depth, "Call (%d args)", len(e.Args))
		printExpr(buf, e.Callee, depth+1)
		for _, a := range e.Args {
			printExpr(buf, a, depth+1)
		}
	default:
		writeLine(buf, depth, "<unknown expression %T>", expr)
	}
}

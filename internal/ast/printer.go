package ast

import (
	"fmt"
	"strings"
)

// Print renders a program as a parenthesized, Lisp-like tree, the same
// debugging aid the spec's §1 calls out as a thin, out-of-scope
// collaborator. The output is an s-expression dump, not LBPL source: the
// parser does not read it back.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *FnDecl:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		return paren("fn", n.Name.Lexeme, "("+strings.Join(params, " ")+")", printBody(n.Body))
	case *VarDecl:
		if n.Initializer == nil {
			return paren("let", n.Name.Lexeme)
		}
		return paren("let", n.Name.Lexeme, printExpr(n.Initializer))
	case *ClassDecl:
		super := "nil"
		if n.Superclass != nil {
			super = n.Superclass.Name.Lexeme
		}
		methods := make([]string, len(n.Methods))
		for i, m := range n.Methods {
			methods[i] = printStmt(m)
		}
		return paren("class", n.Name.Lexeme, super, strings.Join(methods, " "))
	case *If:
		if n.Else == nil {
			return paren("if", printExpr(n.Cond), printStmt(n.Then))
		}
		return paren("if", printExpr(n.Cond), printStmt(n.Then), printStmt(n.Else))
	case *While:
		return paren("while", printExpr(n.Cond), printStmt(n.Body))
	case *For:
		init, incr := "nil", "nil"
		if n.Init != nil {
			init = printStmt(n.Init)
		}
		if n.Increment != nil {
			incr = printExpr(n.Increment)
		}
		return paren("for", init, printExpr(n.Cond), incr, printStmt(n.Body))
	case *Scoped:
		return paren("scoped", printBody(n.Body))
	case *ExprStmt:
		return printExpr(n.Expr)
	case *Return:
		if n.Value == nil {
			return paren("return")
		}
		return paren("return", printExpr(n.Value))
	default:
		return fmt.Sprintf("<unknown-stmt %T>", s)
	}
}

func printBody(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = printStmt(s)
	}
	return strings.Join(parts, " ")
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Binary:
		return paren(n.Op.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Unary:
		return paren(n.Op.Lexeme, printExpr(n.Right))
	case *Literal:
		return literalLexeme(n)
	case *Grouping:
		return paren("group", printExpr(n.Inner))
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return paren("=", n.Name.Lexeme, printExpr(n.Value))
	case *Ternary:
		return paren("?:", printExpr(n.Cond), printExpr(n.Then), printExpr(n.Else))
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = printExpr(a)
		}
		return paren("call", printExpr(n.Callee), strings.Join(args, " "))
	case *GetField:
		return paren("get", printExpr(n.Instance), n.Field.Lexeme)
	case *SetField:
		return paren("set", printExpr(n.Instance), n.Field.Lexeme, printExpr(n.Value))
	case *This:
		return "this"
	case *Super:
		return paren("super", n.Field.Lexeme)
	case *Break:
		return "break"
	case *Continue:
		return "continue"
	default:
		return fmt.Sprintf("<unknown-expr %T>", e)
	}
}

func literalLexeme(n *Literal) string {
	switch n.Token.Kind.String() {
	case "string":
		return fmt.Sprintf("%q", n.Token.Lexeme)
	case "char":
		return fmt.Sprintf("'%c'", n.Token.CharValue)
	case "int":
		return fmt.Sprintf("%d", n.Token.IntValue)
	case "float":
		return fmt.Sprintf("%g", n.Token.FloatValue)
	default:
		return n.Token.Kind.String()
	}
}

func paren(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}

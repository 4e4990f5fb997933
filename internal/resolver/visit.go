package resolver

import "github.com/cwbudde/go-lbpl/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.FnDecl:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, fnFunction)

	case *ast.ClassDecl:
		r.resolveClass(n)

	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.While:
		r.resolveExpr(n.Cond)
		r.loops++
		r.resolveStmt(n.Body)
		r.loops--

	case *ast.For:
		r.beginScope()
		if n.Init != nil {
			r.resolveStmt(n.Init)
		}
		r.resolveExpr(n.Cond)
		if n.Increment != nil {
			r.resolveExpr(n.Increment)
		}
		r.loops++
		r.resolveStmt(n.Body)
		r.loops--
		r.endScope()

	case *ast.Scoped:
		r.beginScope()
		r.resolveStmts(n.Body)
		r.endScope()

	case *ast.ExprStmt:
		r.resolveExpr(n.Expr)

	case *ast.Return:
		if r.currentFn == fnNone {
			r.fail(n.Pos(), "can't return from top-level code")
			return
		}
		if n.Value != nil {
			if r.currentFn == fnInitializer {
				r.fail(n.Pos(), "can't return a value from a class initializer")
				return
			}
			r.resolveExpr(n.Value)
		}
	}
}

// resolveFunction opens a new scope for the parameter list and body,
// tracking currentFn so return-usage checks apply to the right frame.
func (r *Resolver) resolveFunction(fn *ast.FnDecl, kind fnType) {
	enclosingFn := r.currentFn
	r.currentFn = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveClass declares/defines the class name, rejects self-inheritance,
// opens the `super` scope (if any) and the `this` scope, then resolves
// every method as a function -- `init` resolves as an Initializer
// (spec.md §4.3).
func (r *Resolver) resolveClass(n *ast.ClassDecl) {
	r.declare(n.Name)
	r.define(n.Name)

	enclosingClass := r.currentClass

	if n.Superclass != nil && n.Superclass.Name.Lexeme == n.Name.Lexeme {
		r.fail(n.Superclass.Pos(), "a class can't inherit from itself")
		return
	}

	if n.Superclass != nil {
		r.currentClass = classSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.defineNamed("super")
	} else {
		r.currentClass = classPlain
	}

	r.beginScope()
	r.defineNamed("this")

	for _, method := range n.Methods {
		kind := fnFunction
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Literal:
		// no sub-expressions, no scope reference

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.scope()[n.Name.Lexeme]; ok && state == stateInit {
				r.fail(n.Pos(), "can't read local variable '%s' in its own initializer", n.Name.Lexeme)
				return
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Ternary:
		r.resolveExpr(n.Cond)
		r.resolveExpr(n.Then)
		r.resolveExpr(n.Else)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.GetField:
		r.resolveExpr(n.Instance)

	case *ast.SetField:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Instance)

	case *ast.This:
		if r.currentClass == classNone {
			r.fail(n.Pos(), "can't use 'this' outside of a class body")
			return
		}
		r.resolveLocal(n, "this")

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.fail(n.Pos(), "can't use 'super' outside of a class body")
			return
		case classPlain:
			r.fail(n.Pos(), "can't use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal(n, "super")

	case *ast.Break:
		if r.loops <= 0 {
			r.fail(n.Pos(), "can't break from outside of a loop")
		}

	case *ast.Continue:
		if r.loops <= 0 {
			r.fail(n.Pos(), "can't continue from outside of a loop")
		}
	}
}

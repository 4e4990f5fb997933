// Package resolver implements the static scope-resolution pass between
// parsing and interpretation (spec.md §4.3): a single statement-visitor
// walk that computes, for every variable-reference expression, the
// lexical-scope distance to its declaring scope, and validates
// this/super/return/break/continue usage and redeclaration.
//
// Grounded on the original resolver's scope-stack algorithm
// (resolver.cpp), reimplemented as type-switch dispatch over the ast
// package rather than a visitor interface, matching the style already
// established in the lexer/parser packages.
package resolver

import (
	"fmt"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/diagnostics"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// varState tracks whether a declared name has finished initializing.
// Reading a name still in Init (its own initializer) is an error.
type varState int

const (
	stateInit varState = iota
	stateReady
)

// fnType tracks what kind of function body, if any, is being resolved.
type fnType int

const (
	fnNone fnType = iota
	fnFunction
	fnInitializer
)

// classType tracks whether the class body being resolved has a superclass.
type classType int

const (
	classNone classType = iota
	classPlain
	classSubclass
)

// Resolver performs the scope-resolution pass. Depths accumulates the
// result the interpreter consumes: exprID -> lexical distance.
type Resolver struct {
	scopes []map[string]varState

	currentFn    fnType
	currentClass classType
	loops        int

	depths map[int]int
	errors []diagnostics.Diagnostic

	src string
}

// New constructs a Resolver over source, used only to attach context
// lines to diagnostics.
func New(src string) *Resolver {
	return &Resolver{
		depths: make(map[int]int),
		src:    src,
	}
}

// Resolve walks every top-level statement, accumulating depths and
// diagnostics. One erroring statement does not stop the rest from being
// resolved (spec.md §4.3 mirrors the parser's recovery posture).
func (r *Resolver) Resolve(stmts []ast.Stmt) (map[int]int, []diagnostics.Diagnostic) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
	return r.depths, r.errors
}

// HadError reports whether any resolve error occurred, blocking the
// interpreter stage per spec.md §2.
func (r *Resolver) HadError() bool { return len(r.errors) > 0 }

func (r *Resolver) fail(pos token.Position, format string, args ...any) {
	r.errors = append(r.errors, diagnostics.Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Source:  r.src,
	})
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]varState{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) scope() map[string]varState {
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name into the innermost scope as Init; a duplicate in
// the same scope is a redeclaration error. A no-op at global scope,
// matching the original: globals are resolved dynamically at run time.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scope()
	if _, exists := scope[name.Lexeme]; exists {
		r.fail(name.Pos, "variable with this name already exists in this scope: '%s'", name.Lexeme)
		return
	}
	scope[name.Lexeme] = stateInit
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scope()[name.Lexeme] = stateReady
}

func (r *Resolver) defineNamed(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scope()[name] = stateReady
}

// resolveLocal scans scopes innermost-outward; on first hit it records
// the depth against expr's stable ID. A miss leaves no entry, which the
// interpreter treats as "look it up in the global environment."
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

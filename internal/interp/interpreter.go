// Package interp evaluates a resolved LBPL AST against a chained
// environment model and the tagged value model of package value
// (spec.md §4.4): scoping, control flow via explicit non-local-exit
// signals, classes/methods/initializers with dynamic dispatch, and
// dynamically-typed arithmetic/logical operators.
//
// Grounded on the teacher's interp package structure (Environment,
// ClassInfo/ObjectInstance, FunctionPointerValue), generalized down to
// LBPL's much smaller value and callable surface.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/diagnostics"
)

// RuntimeError is a spec.md §7 category-3 error: undefined name, type
// mismatch, division/modulo by zero, wrong arity, calling a
// non-callable, field access on a non-instance, or an undefined field.
// Uncaught at top level, it terminates the program after being printed.
type RuntimeError struct {
	Diag diagnostics.Diagnostic
}

func (e *RuntimeError) Error() string { return e.Diag.Error() }

// Interpreter holds the global environment (built-ins plus top-level
// declarations) and the environment pointer that shifts as execution
// enters and leaves scopes (spec.md §4.4).
type Interpreter struct {
	Global *Environment
	env    *Environment

	depths map[int]int
	src    string
	file   string

	// Stdout is where `println` writes; defaulted to os.Stdout by New
	// but swappable so tests can capture output.
	Stdout io.Writer
}

// New constructs an interpreter over a resolved program: depths is the
// exprID→lexical-depth map the resolver produced. file/src are carried
// only for diagnostic source-context rendering.
func New(file, src string, depths map[int]int) *Interpreter {
	global := NewEnvironment()
	it := &Interpreter{
		Global: global,
		env:    global,
		depths: depths,
		src:    src,
		file:   file,
		Stdout: os.Stdout,
	}
	registerBuiltins(global)
	return it
}

// MergeDepths adds more to the interpreter's exprID->depth map, leaving
// existing entries untouched. The REPL calls this after resolving each new
// line of input: as long as every parse it feeds the interpreter shares one
// ast.IDGen (see parser.NewWithIDs), expression IDs never collide across
// lines, so depths accumulated from earlier lines stay valid for closures
// and functions that outlive the line they were declared on.
func (it *Interpreter) MergeDepths(more map[int]int) {
	for id, depth := range more {
		it.depths[id] = depth
	}
}

func (it *Interpreter) runtimeError(pos ast.Node, format string, args ...any) error {
	return &RuntimeError{Diag: diagnostics.Diagnostic{
		Pos:     pos.Pos(),
		Message: fmt.Sprintf(format, args...),
		Source:  it.src,
	}}
}

// Run executes every top-level statement in program order, stopping at
// the first runtime error (spec.md §7: runtime errors are uncaught at
// the top level and terminate the program after being printed).
func (it *Interpreter) Run(stmts []ast.Stmt) error {
	sig, err := it.executeBlock(stmts, it.env)
	if err != nil {
		return err
	}
	// break/continue/return reaching top level would be a resolver bug --
	// the resolver rejects all three outside their proper context.
	_ = sig
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// current-environment pointer on return so a nested scope never leaks
// into its caller (spec.md §3.6).
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (signal, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		sig, err := it.execStmt(s)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

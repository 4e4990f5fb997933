package interp

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/value"
)

// Callable is implemented by every invocable runtime value: user
// functions/methods, host built-ins, and classes acting as constructors
// (spec.md §3.4).
type Callable interface {
	value.Value
	Arity() int
	Call(interp *Interpreter, args []value.Value) (value.Value, error)
}

// UserFunction wraps a declared `fn` (or a class method) with the
// environment it closed over at declaration time, and whether it is a
// class's `init` method -- which changes what a bare `return` yields
// (spec.md §3.4, §4.4).
type UserFunction struct {
	Decl          *ast.FnDecl
	Closure       *Environment
	IsInitializer bool
}

func (f *UserFunction) Type() string   { return "function" }
func (f *UserFunction) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }
func (f *UserFunction) Arity() int     { return len(f.Decl.Params) }

// Call allocates a fresh environment parented on the function's closure,
// binds each parameter, and executes the body there (spec.md §4.4's
// "Function call" step 5). A Return unwind supplies the result; falling
// off the end yields nil, or the bound `this` for an initializer.
func (f *UserFunction) Call(interp *Interpreter, args []value.Value) (value.Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	sig, err := interp.executeBlock(f.Decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}

	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return value.NilValue, nil
}

// bind clones a method, replacing its closure with a fresh environment
// parented on the method's *original* closure and defining `this` as
// the receiving instance there. Cloning (rather than mutating the
// shared method value in place) is what gives every bound instance its
// own `this` while still sharing the same declaring closure chain --
// this corrects a bug in the reference implementation's LBPLFunc::bind,
// which mutated the single shared closure in place so that binding the
// same method to a second instance silently rebound `this` for the
// first instance too (spec.md §4.4 "Method binding").
func (f *UserFunction) bind(this value.Value) *UserFunction {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", this)
	return &UserFunction{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// HostFunc is a built-in's native evaluation routine.
type HostFunc func(interp *Interpreter, args []value.Value) (value.Value, error)

// HostFunction is a host built-in (spec.md §3.4, §4.5): a fixed arity
// plus a native Go routine, registered in the global environment at
// interpreter construction.
type HostFunction struct {
	Name string
	Ar   int
	Fn   HostFunc
}

func (h *HostFunction) Type() string   { return "builtin" }
func (h *HostFunction) String() string { return "<native fn " + h.Name + ">" }
func (h *HostFunction) Arity() int     { return h.Ar }

func (h *HostFunction) Call(interp *Interpreter, args []value.Value) (value.Value, error) {
	return h.Fn(interp, args)
}

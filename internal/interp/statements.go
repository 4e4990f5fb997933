package interp

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/value"
)

// execStmt dispatches one statement, returning a non-none signal when a
// break/continue/return unwind needs to propagate to its handler
// (spec.md §4.4's control-flow table).
func (it *Interpreter) execStmt(s ast.Stmt) (signal, error) {
	switch n := s.(type) {
	case *ast.VarDecl:
		return it.execVarDecl(n)
	case *ast.FnDecl:
		it.env.Define(n.Name.Lexeme, &UserFunction{Decl: n, Closure: it.env})
		return noSignal, nil
	case *ast.ClassDecl:
		return noSignal, it.execClassDecl(n)
	case *ast.If:
		return it.execIf(n)
	case *ast.While:
		return it.execWhile(n)
	case *ast.For:
		return it.execFor(n)
	case *ast.Scoped:
		return it.executeBlock(n.Body, NewEnclosedEnvironment(it.env))
	case *ast.ExprStmt:
		_, sig, err := it.evalExpr(n.Expr)
		return sig, err
	case *ast.Return:
		return it.execReturn(n)
	}
	return noSignal, nil
}

// execVarDecl evaluates the initializer, if any. The grammar lets an
// initializer be any expression, including `break`/`continue`; a non-none
// signal there is nonsensical but not forbidden, so it is simply
// propagated up like everywhere else.
func (it *Interpreter) execVarDecl(n *ast.VarDecl) (signal, error) {
	val := value.NilValue
	if n.Initializer != nil {
		v, sig, err := it.evalExpr(n.Initializer)
		if err != nil || sig.kind != signalNone {
			return sig, err
		}
		val = v
	}
	it.env.Define(n.Name.Lexeme, val)
	return noSignal, nil
}

// execClassDecl builds the runtime Class from a class statement.
// Methods close over the current environment at declaration time; when
// a superclass is present, an intermediate environment defining `super`
// is introduced so that `super.method` resolution walks from there
// (spec.md §4.4 "Classes and inheritance").
func (it *Interpreter) execClassDecl(n *ast.ClassDecl) error {
	var superclass *Class
	if n.Superclass != nil {
		v, _, err := it.evalExpr(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return it.runtimeError(n.Superclass, "superclass '%s' is not a class", n.Superclass.Name.Lexeme)
		}
		superclass = sc
	}

	// Declare the name up front so methods whose bodies reference the
	// class itself (e.g. a factory method) can see it.
	it.env.Define(n.Name.Lexeme, value.NilValue)

	methodEnv := it.env
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(it.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &UserFunction{
			Decl:          m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: n.Name.Lexeme, Superclass: superclass, Methods: methods}
	it.env.Assign(n.Name.Lexeme, class)
	return nil
}

func (it *Interpreter) execIf(n *ast.If) (signal, error) {
	cond, sig, err := it.evalExpr(n.Cond)
	if err != nil || sig.kind != signalNone {
		return sig, err
	}
	if value.IsTruthy(cond) {
		return it.execStmt(n.Then)
	}
	if n.Else != nil {
		return it.execStmt(n.Else)
	}
	return noSignal, nil
}

// execWhile is one of the two loop drivers that catch Break; Continue is
// simply let fall through the switch below -- there is nothing left to
// do in an iteration once its body signals Continue, so not acting on it
// already means "go evaluate the condition again".
func (it *Interpreter) execWhile(n *ast.While) (signal, error) {
	for {
		cond, sig, err := it.evalExpr(n.Cond)
		if err != nil || sig.kind != signalNone {
			return sig, err
		}
		if !value.IsTruthy(cond) {
			return noSignal, nil
		}

		bodySig, err := it.execStmt(n.Body)
		if err != nil {
			return noSignal, err
		}
		switch bodySig.kind {
		case signalBreak:
			return noSignal, nil
		case signalReturn:
			return bodySig, nil
		}
	}
}

// execFor runs in the loop-local scope materialized once by the parser
// (spec.md §4.2's "for desugaring" note), so Init's bindings are visible
// to Cond, Increment, and Body across every iteration. Continue skips
// straight to Increment, matching `while`'s fall-through treatment.
func (it *Interpreter) execFor(n *ast.For) (signal, error) {
	previous := it.env
	it.env = NewEnclosedEnvironment(it.env)
	defer func() { it.env = previous }()

	if n.Init != nil {
		if sig, err := it.execStmt(n.Init); err != nil || sig.kind != signalNone {
			return sig, err
		}
	}

	for {
		cond, sig, err := it.evalExpr(n.Cond)
		if err != nil || sig.kind != signalNone {
			return sig, err
		}
		if !value.IsTruthy(cond) {
			return noSignal, nil
		}

		bodySig, err := it.execStmt(n.Body)
		if err != nil {
			return noSignal, err
		}
		if bodySig.kind == signalBreak {
			return noSignal, nil
		}
		if bodySig.kind == signalReturn {
			return bodySig, nil
		}

		if n.Increment != nil {
			if _, sig, err := it.evalExpr(n.Increment); err != nil || sig.kind != signalNone {
				return sig, err
			}
		}
	}
}

func (it *Interpreter) execReturn(n *ast.Return) (signal, error) {
	if n.Value == nil {
		return signal{kind: signalReturn, value: value.NilValue}, nil
	}
	v, sig, err := it.evalExpr(n.Value)
	if err != nil || sig.kind != signalNone {
		return sig, err
	}
	return signal{kind: signalReturn, value: v}, nil
}

package interp

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
	"github.com/cwbudde/go-lbpl/internal/value"
)

// evalExpr evaluates e, returning alongside its value any break/continue
// signal produced by evaluating a nested `break`/`continue` expression.
// Every call site below checks the signal before doing anything with the
// value and, if non-none, stops evaluating sibling sub-expressions and
// propagates it straight up -- the same short-circuiting an exception
// would give, without using panic/recover (spec.md DESIGN NOTES §9).
func (it *Interpreter) evalExpr(e ast.Expr) (value.Value, signal, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n), noSignal, nil

	case *ast.Grouping:
		return it.evalExpr(n.Inner)

	case *ast.Variable:
		v, err := it.lookupVariable(n, n.Name)
		return v, noSignal, err

	case *ast.Assign:
		v, sig, err := it.evalExpr(n.Value)
		if err != nil || sig.kind != signalNone {
			return v, sig, err
		}
		if err := it.assignVariable(n, n.Name, v); err != nil {
			return nil, noSignal, err
		}
		return v, noSignal, nil

	case *ast.Unary:
		right, sig, err := it.evalExpr(n.Right)
		if err != nil || sig.kind != signalNone {
			return right, sig, err
		}
		v, err := it.evalUnary(n, right)
		return v, noSignal, err

	case *ast.Binary:
		left, sig, err := it.evalExpr(n.Left)
		if err != nil || sig.kind != signalNone {
			return left, sig, err
		}
		right, sig, err := it.evalExpr(n.Right)
		if err != nil || sig.kind != signalNone {
			return right, sig, err
		}
		v, err := it.evalBinary(n, left, right)
		return v, noSignal, err

	case *ast.Ternary:
		cond, sig, err := it.evalExpr(n.Cond)
		if err != nil || sig.kind != signalNone {
			return cond, sig, err
		}
		if value.IsTruthy(cond) {
			return it.evalExpr(n.Then)
		}
		return it.evalExpr(n.Else)

	case *ast.Call:
		return it.evalCall(n)

	case *ast.GetField:
		inst, sig, err := it.evalExpr(n.Instance)
		if err != nil || sig.kind != signalNone {
			return inst, sig, err
		}
		obj, ok := inst.(*Instance)
		if !ok {
			return nil, noSignal, it.runtimeError(n, "only instances have fields")
		}
		v, err := obj.Get(n.Field.Lexeme)
		if err != nil {
			return nil, noSignal, it.runtimeError(n, "%s", err)
		}
		return v, noSignal, nil

	case *ast.SetField:
		val, sig, err := it.evalExpr(n.Value)
		if err != nil || sig.kind != signalNone {
			return val, sig, err
		}
		inst, sig, err := it.evalExpr(n.Instance)
		if err != nil || sig.kind != signalNone {
			return inst, sig, err
		}
		obj, ok := inst.(*Instance)
		if !ok {
			return nil, noSignal, it.runtimeError(n, "only instances have fields")
		}
		obj.Set(n.Field.Lexeme, val)
		return val, noSignal, nil

	case *ast.This:
		v, err := it.lookupVariable(n, n.Keyword)
		return v, noSignal, err

	case *ast.Super:
		v, err := it.evalSuper(n)
		return v, noSignal, err

	case *ast.Break:
		return value.NilValue, signal{kind: signalBreak}, nil

	case *ast.Continue:
		return value.NilValue, signal{kind: signalContinue}, nil
	}

	return nil, noSignal, it.runtimeError(e, "unhandled expression node %T", e)
}

func literalValue(n *ast.Literal) value.Value {
	switch n.Token.Kind {
	case token.INT:
		return value.Int{Value: n.Token.IntValue}
	case token.FLOAT:
		return value.Float{Value: n.Token.FloatValue}
	case token.STRING:
		return value.String{Value: n.Token.Lexeme}
	case token.CHAR:
		return value.Char{Value: n.Token.CharValue}
	case token.TRUE:
		return value.Bool{Value: true}
	case token.FALSE:
		return value.Bool{Value: false}
	default:
		return value.NilValue
	}
}

// lookupVariable reads name via the resolver's recorded depth if one
// exists for expr, otherwise falls back to the global environment
// (spec.md §3.6's environment protocol).
func (it *Interpreter) lookupVariable(expr ast.Expr, name token.Token) (value.Value, error) {
	if depth, ok := it.depths[expr.ID()]; ok {
		if v, ok := it.env.GetAt(depth, name.Lexeme); ok {
			return v, nil
		}
	}
	if v, ok := it.Global.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, it.runtimeError(expr, "undefined name '%s'", name.Lexeme)
}

func (it *Interpreter) assignVariable(expr ast.Expr, name token.Token, v value.Value) error {
	if depth, ok := it.depths[expr.ID()]; ok {
		it.env.AssignAt(depth, name.Lexeme, v)
		return nil
	}
	if it.Global.Assign(name.Lexeme, v) {
		return nil
	}
	return it.runtimeError(expr, "undefined name '%s'", name.Lexeme)
}

// evalSuper resolves `super.method`: the resolver records the lexical
// depth of the `super` binding, and -- because the class-body scopes
// are always nested as super-scope then this-scope -- the matching
// `this` sits exactly one scope closer (spec.md §4.4 "Classes and
// inheritance").
func (it *Interpreter) evalSuper(n *ast.Super) (value.Value, error) {
	depth, ok := it.depths[n.ID()]
	if !ok {
		return nil, it.runtimeError(n, "internal error: 'super' was not resolved")
	}
	superVal, _ := it.env.GetAt(depth, "super")
	superclass, ok := superVal.(*Class)
	if !ok {
		return nil, it.runtimeError(n, "internal error: 'super' did not resolve to a class")
	}

	thisVal, _ := it.env.GetAt(depth-1, "this")
	instance, _ := thisVal.(*Instance)

	method, ok := superclass.findMethod(n.Field.Lexeme)
	if !ok {
		return nil, it.runtimeError(n, "undefined property '%s' on superclass '%s'", n.Field.Lexeme, superclass.Name)
	}
	return method.bind(instance), nil
}

func (it *Interpreter) evalCall(n *ast.Call) (value.Value, signal, error) {
	callee, sig, err := it.evalExpr(n.Callee)
	if err != nil || sig.kind != signalNone {
		return callee, sig, err
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, sig, err := it.evalExpr(a)
		if err != nil || sig.kind != signalNone {
			return v, sig, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, noSignal, it.runtimeError(n, "can only call a function or class initializer")
	}
	if len(args) != callable.Arity() {
		return nil, noSignal, it.runtimeError(n, "expected %d arguments but got %d", callable.Arity(), len(args))
	}

	v, err := callable.Call(it, args)
	return v, noSignal, err
}

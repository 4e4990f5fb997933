package interp

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
	"github.com/cwbudde/go-lbpl/internal/value"
)

// evalUnary applies `!` or `-` (spec.md §4.4): `!` uses the simplified
// truthiness rule, `-` requires an Int or Float operand.
func (it *Interpreter) evalUnary(n *ast.Unary, right value.Value) (value.Value, error) {
	switch n.Op.Kind {
	case token.BANG:
		return value.Bool{Value: !value.IsTruthy(right)}, nil
	case token.MINUS:
		switch v := right.(type) {
		case value.Int:
			return value.Int{Value: -v.Value}, nil
		case value.Float:
			return value.Float{Value: -v.Value}, nil
		}
		return nil, it.runtimeError(n, "unary '-' requires a number, got %s", right.Type())
	}
	return nil, it.runtimeError(n, "unknown unary operator '%s'", n.Op.Lexeme)
}

// evalBinary dispatches on operator kind and the homogeneous-kind table
// from spec.md §4.4: int/int arithmetic+comparison+modulo, double/double
// arithmetic+comparison, string concatenation with either side stringified
// via value.Stringify, `&&`/`||` as ordinary (non-short-circuiting) binary
// operators over truthiness, and `==`/`!=` via value.Equal -- which
// itself rejects mismatched kinds.
func (it *Interpreter) evalBinary(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch n.Op.Kind {
	case token.EQ_EQ:
		eq, sameKind := value.Equal(left, right)
		if !sameKind {
			return nil, it.runtimeError(n, "cannot compare %s to %s", left.Type(), right.Type())
		}
		return value.Bool{Value: eq}, nil

	case token.BANG_EQ:
		eq, sameKind := value.Equal(left, right)
		if !sameKind {
			return nil, it.runtimeError(n, "cannot compare %s to %s", left.Type(), right.Type())
		}
		return value.Bool{Value: !eq}, nil

	case token.AND:
		return value.Bool{Value: value.IsTruthy(left) && value.IsTruthy(right)}, nil

	case token.OR:
		return value.Bool{Value: value.IsTruthy(left) || value.IsTruthy(right)}, nil

	case token.PLUS:
		return it.evalPlus(n, left, right)
	}

	li, lIsInt := left.(value.Int)
	ri, rIsInt := right.(value.Int)
	if lIsInt && rIsInt {
		return it.evalIntOp(n, li.Value, ri.Value)
	}

	lf, lok := left.(value.Float)
	rf, rok := right.(value.Float)
	if lok && rok {
		return it.evalFloatOp(n, lf.Value, rf.Value)
	}

	return nil, it.runtimeError(n, "operator '%s' is not defined for %s and %s", n.Op.Lexeme, left.Type(), right.Type())
}

// evalPlus is the one operator with a third, string-valued case: a
// value.String on either side concatenates with another string or with
// an int or float stringified via value.Stringify (spec.md §4.4 "string +
// number"); a string with any other kind is a runtime error.
func (it *Interpreter) evalPlus(n *ast.Binary, left, right value.Value) (value.Value, error) {
	numeric := func(v value.Value) bool {
		switch v.(type) {
		case value.Int, value.Float:
			return true
		}
		return false
	}
	ls, lIsStr := left.(value.String)
	rs, rIsStr := right.(value.String)
	if (lIsStr || rIsStr) && (lIsStr || numeric(left)) && (rIsStr || numeric(right)) {
		lstr := ls.Value
		if !lIsStr {
			lstr = value.Stringify(left)
		}
		rstr := rs.Value
		if !rIsStr {
			rstr = value.Stringify(right)
		}
		return value.String{Value: lstr + rstr}, nil
	}

	if li, ok := left.(value.Int); ok {
		if ri, ok := right.(value.Int); ok {
			return value.Int{Value: li.Value + ri.Value}, nil
		}
	}
	if lf, ok := left.(value.Float); ok {
		if rf, ok := right.(value.Float); ok {
			return value.Float{Value: lf.Value + rf.Value}, nil
		}
	}

	return nil, it.runtimeError(n, "operator '+' is not defined for %s and %s", left.Type(), right.Type())
}

func (it *Interpreter) evalIntOp(n *ast.Binary, l, r int64) (value.Value, error) {
	switch n.Op.Kind {
	case token.MINUS:
		return value.Int{Value: l - r}, nil
	case token.STAR:
		return value.Int{Value: l * r}, nil
	case token.SLASH:
		if r == 0 {
			return nil, it.runtimeError(n, "division by zero")
		}
		return value.Int{Value: l / r}, nil
	case token.PERCENT:
		if r == 0 {
			return nil, it.runtimeError(n, "modulo by zero")
		}
		return value.Int{Value: l % r}, nil
	case token.GREATER:
		return value.Bool{Value: l > r}, nil
	case token.GREATER_EQ:
		return value.Bool{Value: l >= r}, nil
	case token.LESS:
		return value.Bool{Value: l < r}, nil
	case token.LESS_EQ:
		return value.Bool{Value: l <= r}, nil
	}
	return nil, it.runtimeError(n, "operator '%s' is not defined for int and int", n.Op.Lexeme)
}

func (it *Interpreter) evalFloatOp(n *ast.Binary, l, r float64) (value.Value, error) {
	switch n.Op.Kind {
	case token.MINUS:
		return value.Float{Value: l - r}, nil
	case token.STAR:
		return value.Float{Value: l * r}, nil
	case token.SLASH:
		if r == 0 {
			return nil, it.runtimeError(n, "division by zero")
		}
		return value.Float{Value: l / r}, nil
	case token.GREATER:
		return value.Bool{Value: l > r}, nil
	case token.GREATER_EQ:
		return value.Bool{Value: l >= r}, nil
	case token.LESS:
		return value.Bool{Value: l < r}, nil
	case token.LESS_EQ:
		return value.Bool{Value: l <= r}, nil
	}
	return nil, it.runtimeError(n, "operator '%s' is not defined for double and double", n.Op.Lexeme)
}

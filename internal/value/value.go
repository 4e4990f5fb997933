// Package value defines the tagged-union runtime value model LBPL's
// interpreter evaluates against (spec.md §3.3): nil, boolean, 64-bit
// signed integer, double-precision float, character, and immutable string.
// The shared class/instance/callable object kinds also implement Value but
// are defined in package interp. Numeric
// operations are kind-homogeneous; there is no implicit int/float
// coercion, only string concatenation with a stringified int or float
// (spec.md §4.4).
//
// Grounded on the teacher's interp.Value: a tagged interface with
// Type()/String() methods and one struct per kind, rather than a Go
// interface{} union.
package value

import (
	"fmt"
	"strconv"
)

// Value is implemented by every runtime value kind.
type Value interface {
	// Type returns the kind name, used in diagnostics (e.g. "int", "string").
	Type() string
	// String returns the value's printable representation.
	String() string
}

// Nil is LBPL's single nil value; there is exactly one instance, NilValue.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the singleton nil value, safe to compare and share freely.
var NilValue Value = Nil{}

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b Bool) Type() string { return "bool" }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i Int) Type() string   { return "int" }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Float is a double-precision floating-point value.
type Float struct{ Value float64 }

func (f Float) Type() string   { return "double" }
func (f Float) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Char is a single Unicode code point.
type Char struct{ Value rune }

func (c Char) Type() string   { return "char" }
func (c Char) String() string { return string(c.Value) }

// String is an immutable string value.
type String struct{ Value string }

func (s String) Type() string   { return "string" }
func (s String) String() string { return s.Value }

// IsTruthy implements the single predicate the interpreter uses for every
// conditional and logical context (spec.md §4.4, §9 open question i): nil
// is false, a boolean is itself, and every other kind -- including 0,
// 0.0, the empty string, and any object -- is false. This is the
// documented SIMPLIFICATION over the reference implementation's inverted
// `== 0` check; it is reproduced here deliberately, not by omission.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return t.Value
	default:
		return false
	}
}

// Equal implements the `==` family for kinds where equality is
// well-defined: nil, bool, int, float, char, and string, each only
// against its own kind. Comparing nil to nil is the single cross-kind
// case with a defined answer; every other kind mismatch is the
// caller's responsibility to reject per spec.md §4.4 ("no universal
// equality").
func Equal(a, b Value) (bool, bool) {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok, ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x.Value == y.Value, ok
	case Int:
		y, ok := b.(Int)
		return ok && x.Value == y.Value, ok
	case Float:
		y, ok := b.(Float)
		return ok && x.Value == y.Value, ok
	case Char:
		y, ok := b.(Char)
		return ok && x.Value == y.Value, ok
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value, ok
	default:
		return false, false
	}
}

// Stringify converts an Int or Float to its string form for the `+`
// string-concatenation rule of spec.md §4.4's operator table; it panics
// if called on anything else. The interpreter's `+` only calls it for
// int/float operands.
func Stringify(v Value) string {
	switch t := v.(type) {
	case Int:
		return t.String()
	case Float:
		return t.String()
	default:
		panic(fmt.Sprintf("value.Stringify: unsupported kind %T", v))
	}
}

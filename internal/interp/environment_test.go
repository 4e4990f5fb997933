package interp

import (
	"testing"

	"github.com/cwbudde/go-lbpl/internal/value"
)

func TestNewEnvironmentIsEmpty(t *testing.T) {
	env := NewEnvironment()

	if _, ok := env.Get("x"); ok {
		t.Error("fresh environment should not contain any bindings")
	}
}

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", value.Int{Value: 42})

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("variable 'x' not found after definition")
	}
	if i, ok := val.(value.Int); !ok || i.Value != 42 {
		t.Errorf("expected int 42, got %#v", val)
	}
}

func TestGetUndefined(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("undefined"); ok {
		t.Error("expected undefined variable to report false")
	}
}

func TestDefineOverwrite(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", value.Int{Value: 10})
	env.Define("x", value.Int{Value: 20})

	val, _ := env.Get("x")
	if val.(value.Int).Value != 20 {
		t.Errorf("expected overwritten value 20, got %v", val)
	}
}

func TestAssignExisting(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", value.Int{Value: 10})

	if !env.Assign("x", value.Int{Value: 20}) {
		t.Fatal("Assign reported false for an existing name")
	}
	val, _ := env.Get("x")
	if val.(value.Int).Value != 20 {
		t.Errorf("expected updated value 20, got %v", val)
	}
}

func TestAssignUndefined(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("undefined", value.Int{Value: 42}) {
		t.Error("expected Assign to report false for an undefined name")
	}
}

func TestNestedScopeSeesOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("global", value.String{Value: "I'm global"})

	inner := NewEnclosedEnvironment(outer)
	inner.Define("local", value.String{Value: "I'm local"})

	if val, ok := inner.Get("global"); !ok || val.(value.String).Value != "I'm global" {
		t.Error("inner scope cannot see outer variable 'global'")
	}
	if _, ok := outer.Get("local"); ok {
		t.Error("outer scope should not see inner variable 'local'")
	}
}

func TestAssignThroughNestedScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", value.Int{Value: 10})
	inner := NewEnclosedEnvironment(outer)

	if !inner.Assign("x", value.Int{Value: 20}) {
		t.Fatal("failed to assign outer variable from inner scope")
	}

	val, _ := outer.Get("x")
	if val.(value.Int).Value != 20 {
		t.Errorf("outer scope: expected x=20, got %v", val)
	}
}

func TestShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", value.Int{Value: 10})

	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", value.Int{Value: 20})

	innerVal, _ := inner.Get("x")
	if innerVal.(value.Int).Value != 20 {
		t.Errorf("inner scope: expected x=20, got %v", innerVal)
	}
	outerVal, _ := outer.Get("x")
	if outerVal.(value.Int).Value != 10 {
		t.Errorf("outer scope: expected x=10, got %v", outerVal)
	}
}

func TestGetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment()
	global.Define("x", value.Int{Value: 1})

	level1 := NewEnclosedEnvironment(global)
	level2 := NewEnclosedEnvironment(level1)
	level3 := NewEnclosedEnvironment(level2)

	val, ok := level3.GetAt(3, "x")
	if !ok || val.(value.Int).Value != 1 {
		t.Fatalf("GetAt(3, x) = %v, %v", val, ok)
	}

	level3.AssignAt(3, "x", value.Int{Value: 99})
	val, _ = global.Get("x")
	if val.(value.Int).Value != 99 {
		t.Errorf("expected global x=99 after AssignAt, got %v", val)
	}
}

func TestAncestorPanicsOnInvariantViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected ancestor to panic when asked for a depth beyond the chain")
		}
	}()
	NewEnvironment().ancestor(1)
}

package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lbpl/internal/parser"
	"github.com/cwbudde/go-lbpl/internal/resolver"
)

// run parses, resolves, and interprets src, returning everything printed
// via `println` and any error the pipeline produced at any stage.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	p := parser.New("test.lbpl", src)
	stmts := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}

	r := resolver.New(src)
	depths, diags := r.Resolve(stmts)
	if r.HadError() {
		t.Fatalf("unexpected resolve errors for %q: %v", src, diags)
	}

	var out bytes.Buffer
	it := New("test.lbpl", src, depths)
	it.Stdout = &out

	err := it.Run(stmts)
	return out.String(), err
}

func TestArithmeticAndPrinting(t *testing.T) {
	out, err := run(t, `println(1 + 2 * 3);`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestStringConcatenationStringifiesNumbers(t *testing.T) {
	out, err := run(t, `println("count: " + 42);`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "count: 42\n" {
		t.Errorf("got %q", out)
	}
}

func TestClosureCapturesEnclosingVariable(t *testing.T) {
	out, err := run(t, `
fn makeCounter() {
	let count = 0;
	fn increment() {
		count = count + 1;
		return count;
	}
	return increment;
}

let counter = makeCounter();
println(counter());
println(counter());
println(counter());
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q", out)
	}
}

func TestInheritanceAndDynamicDispatch(t *testing.T) {
	out, err := run(t, `
class Animal {
	speak() { return "..."; }
	describe() { return this.speak(); }
}

class Dog : Animal {
	speak() { return "Woof"; }
}

let d = Dog();
println(d.describe());
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "Woof\n" {
		t.Errorf("got %q -- describe() inherited from Animal should dispatch to Dog.speak()", out)
	}
}

func TestSuperCallsParentMethod(t *testing.T) {
	out, err := run(t, `
class Animal {
	speak() { return "..."; }
}

class Dog : Animal {
	speak() { return super.speak() + " Woof"; }
}

let d = Dog();
println(d.speak());
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "... Woof\n" {
		t.Errorf("got %q", out)
	}
}

func TestInitializerReturnsBoundInstance(t *testing.T) {
	out, err := run(t, `
class Point {
	init(x, y) {
		this.x = x;
		this.y = y;
	}
	sum() { return this.x + this.y; }
}

let p = Point(3, 4);
println(p.sum());
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q", out)
	}
}

func TestMethodBindingIsPerInstance(t *testing.T) {
	out, err := run(t, `
class Box {
	init(v) { this.v = v; }
	get() { return this.v; }
}

let a = Box(1);
let b = Box(2);
let getA = a.get;
let getB = b.get;
println(getA());
println(getB());
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q -- binding a method must not leak 'this' between instances", out)
	}
}

func TestBreakEscapesNestedLoop(t *testing.T) {
	out, err := run(t, `
let i = 0;
while (true) {
	i = i + 1;
	if (i == 3) { break; }
}
println(i);
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "3\n" {
		t.Errorf("got %q", out)
	}
}

func TestContinueSkipsRestOfBody(t *testing.T) {
	out, err := run(t, `
let sum = 0;
for (let i = 0; i < 5; i = i + 1) {
	if (i == 2) { continue; }
	sum = sum + i;
}
println(sum);
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "8\n" {
		t.Errorf("got %q, want %q (0+1+3+4)", out, "8\n")
	}
}

func TestBreakDoesNotEscapeThroughFunctionCall(t *testing.T) {
	out, err := run(t, `
let i = 0;
while (i < 3) {
	i = i + 1;
	fn f() {
		break;
	}
	f();
}
println(i);
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "3\n" {
		t.Errorf("got %q -- a call frame should absorb break/continue, not the enclosing loop", out)
	}
}

func TestUndefinedFieldIsRuntimeError(t *testing.T) {
	_, err := run(t, `
class Empty {}
let e = Empty();
println(e.nope);
`)
	if err == nil {
		t.Fatal("expected a runtime error for an undefined field")
	}
	if !strings.Contains(err.Error(), "Undefined field") {
		t.Errorf("got %q, want it to mention 'Undefined field'", err.Error())
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `println(1 / 0);`)
	if err == nil {
		t.Fatal("expected a runtime error for division by zero")
	}
}

func TestComparingMismatchedKindsIsRuntimeError(t *testing.T) {
	_, err := run(t, `println(1 == "1");`)
	if err == nil {
		t.Fatal("expected a runtime error for comparing int to string")
	}
}

func TestTernaryEvaluatesOneBranch(t *testing.T) {
	out, err := run(t, `println(1 < 2 ? "yes" : "no");`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "yes\n" {
		t.Errorf("got %q", out)
	}
}

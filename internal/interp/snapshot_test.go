package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCanonicalScenariosMatchSnapshot pins the stdout of every scenario in
// spec.md's Testable Properties section against a recorded golden output,
// the way the teacher's fixture suite pins DWScript's reference fixtures.
func TestCanonicalScenariosMatchSnapshot(t *testing.T) {
	scenarios := map[string]string{
		"arithmetic": `println(1 + 2 * 3);`,

		"closures": `
fn make() { let i = 0; fn step() { i = i + 1; return i; } return step; }
let s = make(); println(s()); println(s()); println(s());`,

		"inheritance": `
class A { greet() { println("A"); } }
class B : A { greet() { super.greet(); println("B"); } }
B().greet();`,

		"initializer_returns_instance": `
class P { init(x) { this.x = x; } }
let p = P(42); println(p.x);`,

		"break_out_of_loop": `
for (let i = 0; i < 5; i = i + 1) { if (i == 2) break; println(i); }`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, src)
			if err != nil {
				t.Fatalf("unexpected runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestUndefinedFieldScenarioMatchesSnapshot(t *testing.T) {
	_, err := run(t, `class E {} E().nope;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	snaps.MatchSnapshot(t, err.Error())
}

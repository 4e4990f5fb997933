package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalLinePersistsDeclarationsAcrossLines(t *testing.T) {
	r := New("banner", "0.0.0-test", "----", "lbpl> ")
	var out bytes.Buffer
	r.it.Stdout = &out

	r.evalLine(&out, "let x = 40;")
	r.evalLine(&out, "x = x + 2;")
	r.evalLine(&out, "println(x);")

	if got := out.String(); strings.TrimSpace(got) != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
}

func TestEvalLinePersistsFunctionClosureAcrossLines(t *testing.T) {
	r := New("banner", "0.0.0-test", "----", "lbpl> ")
	var out bytes.Buffer
	r.it.Stdout = &out

	r.evalLine(&out, "let counter = 0;")
	r.evalLine(&out, "fn bump() { counter = counter + 1; println(counter); }")
	r.evalLine(&out, "bump();")
	r.evalLine(&out, "bump();")

	if got := strings.TrimSpace(out.String()); got != "1\n2" {
		t.Fatalf("expected closure to see accumulated counter, got %q", got)
	}
}

func TestEvalLineReportsSyntaxErrorWithoutAbortingSession(t *testing.T) {
	r := New("banner", "0.0.0-test", "----", "lbpl> ")
	var out bytes.Buffer
	r.it.Stdout = &out

	r.evalLine(&out, "let = ;")
	if out.Len() == 0 {
		t.Fatalf("expected a diagnostic to be printed for malformed input")
	}

	out.Reset()
	r.evalLine(&out, "println(1);")
	if got := strings.TrimSpace(out.String()); got != "1" {
		t.Fatalf("session should still work after a bad line, got %q", got)
	}
}

package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/go-lbpl/internal/token"
)

func TestErrorFormatsLineAndColumn(t *testing.T) {
	d := Diagnostic{
		Pos:     token.Position{File: "main.lbpl", Line: 3, Column: 5},
		Message: "unexpected token",
	}
	assert.Equal(t, "[line 3:5 in main.lbpl]: unexpected token", d.Error())
}

func TestFormatWithoutSourceOmitsContext(t *testing.T) {
	d := Diagnostic{
		Pos:     token.Position{File: "main.lbpl", Line: 1, Column: 1},
		Message: "boom",
	}
	assert.Equal(t, d.Error(), d.Format(false))
}

func TestFormatWithSourceRendersCaretLine(t *testing.T) {
	d := Diagnostic{
		Pos:     token.Position{File: "main.lbpl", Line: 2, Column: 4},
		Message: "undefined name 'x'",
		Source:  "let y = 1;\nprintln(x);",
	}
	out := d.Format(false)
	assert.Contains(t, out, "println(x);")
	assert.Contains(t, out, "^")
	assert.NotContains(t, out, "\033[1;31m", "uncolored Format must not emit ANSI escapes")
}

func TestFormatWithColorWrapsCaretInANSI(t *testing.T) {
	d := Diagnostic{
		Pos:     token.Position{File: "main.lbpl", Line: 1, Column: 0},
		Message: "boom",
		Source:  "bad;",
	}
	assert.Contains(t, d.Format(true), "\033[1;31m")
}

func TestFormatAllJoinsWithBlankLine(t *testing.T) {
	diags := []Diagnostic{
		{Pos: token.Position{File: "a.lbpl", Line: 1, Column: 1}, Message: "first"},
		{Pos: token.Position{File: "a.lbpl", Line: 2, Column: 1}, Message: "second"},
	}
	out := FormatAll(diags, false)
	assert.Equal(t, "[line 1:1 in a.lbpl]: first\n\n[line 2:1 in a.lbpl]: second", out)
}

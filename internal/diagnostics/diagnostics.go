// Package diagnostics formats the three error categories of spec.md §7
// (syntax, resolve, runtime) with source context, grounded on the
// teacher's internal/errors.CompilerError formatter.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lbpl/internal/token"
)

// Diagnostic is a single reported problem with its source position and an
// optional carried source line for context rendering.
type Diagnostic struct {
	Pos     token.Position
	Message string
	Source  string // full source text the Pos belongs to; "" disables context rendering
}

// Error implements the error interface: "[line L:C in F]: message",
// exactly the format spec.md §7 mandates.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d:%d in %s]: %s", d.Pos.Line, d.Pos.Column, d.Pos.File, d.Message)
}

// Format renders the diagnostic with a source line and caret indicator,
// the way the teacher's CompilerError.Format does; color adds ANSI red/bold
// around the caret only (the message text stays plain).
func (d Diagnostic) Format(color bool) string {
	var sb strings.Builder
	sb.WriteString(d.Error())

	line := d.sourceLine()
	if line == "" {
		return sb.String()
	}

	sb.WriteByte('\n')
	prefix := fmt.Sprintf("  %d | ", d.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.Column))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (d Diagnostic) sourceLine() string {
	if d.Source == "" || d.Pos.Line < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if d.Pos.Line > len(lines) {
		return ""
	}
	return lines[d.Pos.Line-1]
}

// FormatAll renders a batch of diagnostics, one per line with a blank line
// between them, the way the teacher's FormatErrors does for multiple
// CompilerErrors.
func FormatAll(diags []Diagnostic, color bool) string {
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = d.Format(color)
	}
	return strings.Join(parts, "\n\n")
}

// Package repl implements LBPL's interactive Read-Eval-Print Loop,
// grounded on the teacher corpus's readline+fatih/color REPL shape
// (akashmaji946-go-mix's repl.Repl/PrintBannerInfo/Start) but rewired
// onto LBPL's own pipeline: one shared parser.NewWithIDs ID generator and
// one long-lived interp.Interpreter carry declarations and expression
// depths across lines, so a `let`/`fn`/`class` entered on one line stays
// visible to every line typed after it (spec.md §2, §4.3).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/diagnostics"
	"github.com/cwbudde/go-lbpl/internal/interp"
	"github.com/cwbudde/go-lbpl/internal/parser"
	"github.com/cwbudde/go-lbpl/internal/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive LBPL session: a banner plus the long-lived parse
// identity (ids) and interpreter state that persist across input lines.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	ids *ast.IDGen
	it  *interp.Interpreter
}

// New constructs a Repl with its own fresh interpreter. banner/version/line
// are purely cosmetic, following the teacher's banner/version/line/prompt
// fields minus Author/License, which LBPL has no use for.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    line,
		Prompt:  prompt,
		ids:     ast.NewIDGen(),
		it:      interp.New("<repl>", "", map[int]int{}),
	}
}

// PrintBannerInfo prints the startup banner, following the teacher's
// separator/banner/version/instructions layout.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to lbpl!")
	cyanColor.Fprintf(writer, "%s\n", "Type statements and press enter; use println(...) to see values.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, evaluate it against the
// persistent interpreter, print diagnostics or runtime errors, repeat.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBannerInfo(writer)
	r.it.Stdout = writer

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

// evalLine parses, resolves, and executes one line against the session's
// persistent interpreter. Unlike file-mode execution, a bad line never
// aborts the session: it's reported and the prompt returns, matching the
// teacher's "errors don't kill the REPL" behavior.
func (r *Repl) evalLine(writer io.Writer, line string) {
	p := parser.NewWithIDs("<repl>", line, r.ids)
	stmts := p.ParseProgram()
	if p.HadError() {
		printDiagnostics(writer, p.Errors())
		return
	}

	res := resolver.New(line)
	depths, diags := res.Resolve(stmts)
	if res.HadError() {
		printDiagnostics(writer, diags)
		return
	}
	r.it.MergeDepths(depths)

	if err := r.it.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}

func printDiagnostics(writer io.Writer, diags []diagnostics.Diagnostic) {
	for _, d := range diags {
		redColor.Fprintf(writer, "%s\n", d.Format(false))
	}
}

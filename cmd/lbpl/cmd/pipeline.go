package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/diagnostics"
	"github.com/cwbudde/go-lbpl/internal/interp"
	"github.com/cwbudde/go-lbpl/internal/parser"
	"github.com/cwbudde/go-lbpl/internal/resolver"
)

// readInput loads source from exprFlag if set, the named file, or stdin,
// matching the --eval/file/stdin precedence the teacher's subcommands use.
func readInput(exprFlag string, args []string) (src, filename string, err error) {
	if exprFlag != "" {
		return exprFlag, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// parseSource runs the lexer+parser stage, printing diagnostics and
// returning an error if any syntax error was recorded (spec.md §2's
// stage gating).
func parseSource(filename, src string) ([]ast.Stmt, error) {
	p := parser.New(filename, src)
	stmts := p.ParseProgram()
	if p.HadError() {
		printDiagnostics(p.Errors())
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}
	return stmts, nil
}

// resolveProgram runs the resolver stage over an already-parsed program.
func resolveProgram(src string, stmts []ast.Stmt) (map[int]int, error) {
	r := resolver.New(src)
	depths, diags := r.Resolve(stmts)
	if r.HadError() {
		printDiagnostics(diags)
		return nil, fmt.Errorf("resolving failed with %d error(s)", len(diags))
	}
	return depths, nil
}

// runProgram runs the full lex -> parse -> resolve -> interpret pipeline
// and executes stmts against stdout.
func runProgram(filename, src string, stdout io.Writer) error {
	stmts, err := parseSource(filename, src)
	if err != nil {
		return err
	}
	depths, err := resolveProgram(src, stmts)
	if err != nil {
		return err
	}

	it := interp.New(filename, src, depths)
	it.Stdout = stdout
	if err := it.Run(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("execution failed")
	}
	return nil
}

// printDiagnostics renders diagnostics to stderr, colored unless
// fatih/color has detected a non-terminal (redirected output, NO_COLOR,
// etc.), matching the teacher's own stderr-is-plain-when-piped behavior.
func printDiagnostics(diags []diagnostics.Diagnostic) {
	useColor := !color.NoColor
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format(useColor))
	}
}

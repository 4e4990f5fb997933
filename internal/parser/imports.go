package parser

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// importStmt := 'import' STRING ';'
//
// The leading 'import' keyword has already been consumed by the caller.
// Cycle detection matches the literal, unresolved path string against
// every file imported anywhere in the current parse tree (SPEC_FULL.md
// §12.4) -- it does not canonicalize paths, matching the behavior
// confirmed in the original parser.
func (p *Parser) importStmt() ([]ast.Stmt, error) {
	path, err := p.consume(token.STRING, "expected path to file to import")
	if err != nil {
		return nil, err
	}

	if p.importedFiles[path.Lexeme] {
		return nil, p.fail(path.Pos, "recursive file import: '%s' has already been imported or is the main file", path.Lexeme)
	}
	p.importedFiles[path.Lexeme] = true

	contents, readErr := readFile(path.Lexeme)
	if readErr != nil {
		return nil, p.fail(path.Pos, "cannot import '%s': %s", path.Lexeme, readErr)
	}

	if _, err := p.consume(token.SEMICOLON, "expected ';' after import path"); err != nil {
		return nil, err
	}

	sub := newParser(path.Lexeme, string(contents), p.ids, p.importedFiles)
	stmts := sub.ParseProgram()
	p.errors = append(p.errors, sub.Errors()...)
	return stmts, nil
}

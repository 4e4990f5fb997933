// Package parser implements LBPL's recursive-descent grammar (spec.md
// §4.2): single-token lookahead, precedence-climbing expression parsing,
// recursive file import with cycle detection, and panic-mode error
// recovery so one malformed statement doesn't abort the whole parse.
package parser

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/diagnostics"
	"github.com/cwbudde/go-lbpl/internal/lexer"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// Parser turns a token stream into a list of top-level statements.
type Parser struct {
	l    *lexer.Lexer
	file string
	src  string

	cur  token.Token
	peek token.Token

	// previousOp holds the operator token most recently consumed by
	// matchAny, read immediately afterward by leftAssocBinary.
	previousOp token.Token

	errors []diagnostics.Diagnostic

	ids *ast.IDGen

	// importedFiles is shared by value (as a map, which is a reference
	// type) across the whole recursive parse tree, so a cycle introduced
	// several imports deep is still detected (spec.md §4.2, §6.2).
	importedFiles map[string]bool
}

// New creates the root parser for a top-level file. file is used only for
// diagnostics and import-cycle bookkeeping.
func New(file, source string) *Parser {
	return newParser(file, source, ast.NewIDGen(), map[string]bool{file: true})
}

// NewWithIDs creates a parser that draws expression IDs from ids instead of
// a fresh generator, so a caller that parses several independent inputs
// against one long-lived interpreter (the REPL) can keep every expression ID
// it ever sees distinct, letting depth-map entries from earlier inputs stay
// valid once later input is parsed and resolved.
func NewWithIDs(file, source string, ids *ast.IDGen) *Parser {
	return newParser(file, source, ids, map[string]bool{file: true})
}

func newParser(file, source string, ids *ast.IDGen, imported map[string]bool) *Parser {
	p := &Parser{
		l:             lexer.New(file, source),
		file:          file,
		src:           source,
		ids:           ids,
		importedFiles: imported,
	}
	// Prime cur/peek: two advances fill both slots.
	p.advance()
	p.advance()
	return p
}

// Errors returns all diagnostics accumulated during parsing, across the
// top-level file and every recursively imported one.
func (p *Parser) Errors() []diagnostics.Diagnostic { return p.errors }

// HadError reports whether any syntax error occurred, blocking the
// resolver/interpreter stages per spec.md §2.
func (p *Parser) HadError() bool { return len(p.errors) > 0 }

// syntaxError is raised internally by recursive-descent rules to unwind to
// the nearest declaration-level recovery point; it is never returned to a
// caller outside this package.
type syntaxError struct {
	diag diagnostics.Diagnostic
}

func (e syntaxError) Error() string { return e.diag.Error() }

func (p *Parser) fail(pos token.Position, format string, args ...any) syntaxError {
	return syntaxError{diagnostics.Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Source:  p.src,
	}}
}

func (p *Parser) record(e syntaxError) {
	p.errors = append(p.errors, e.diag)
}

// advance shifts the lookahead window forward by one token. An ILLEGAL
// token is turned into a syntax error the moment it becomes `cur` — see
// checkIllegal — rather than here, so callers control recovery.
func (p *Parser) advance() {
	p.cur = p.peek
	if p.peek.Kind == token.EOF {
		return
	}
	p.peek = p.l.Next()
}

func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) checkIllegal() error {
	if p.cur.Kind == token.ILLEGAL {
		err := p.fail(p.cur.Pos, "%s", p.cur.Lexeme)
		p.advance()
		return err
	}
	return nil
}

// match consumes cur and returns true if it has kind k, otherwise leaves
// the cursor untouched.
func (p *Parser) match(k token.Kind) bool {
	if !p.check(k) {
		return false
	}
	p.advance()
	return true
}

// consume requires cur to have kind k, advancing past it; otherwise it
// raises a syntax error with the given message.
func (p *Parser) consume(k token.Kind, msg string) (token.Token, error) {
	if err := p.checkIllegal(); err != nil {
		return token.Token{}, err
	}
	if !p.check(k) {
		return token.Token{}, p.fail(p.cur.Pos, "%s but instead got '%s'", msg, p.cur.Kind)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

func (p *Parser) nextID() int { return p.ids.Next() }

// ParseProgram parses the whole token stream into top-level statements,
// recovering from each declaration-level syntax error via synchronize so
// later, independent declarations are still parsed (spec.md §4.2).
func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt

	for p.cur.Kind != token.EOF {
		if err := p.checkIllegal(); err != nil {
			p.record(err.(syntaxError))
			p.synchronize()
			continue
		}

		if p.match(token.IMPORT) {
			imported, err := p.importStmt()
			if err != nil {
				p.record(err.(syntaxError))
				p.synchronize()
				continue
			}
			stmts = append(stmts, imported...)
			continue
		}

		stmt, err := p.declaration()
		if err != nil {
			p.record(err.(syntaxError))
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}

	return stmts
}

// synchronize discards tokens until just after a ';' or at the start of a
// statement-introducing keyword (spec.md §4.2's panic-mode recovery).
func (p *Parser) synchronize() {
	for p.cur.Kind != token.EOF {
		if p.cur.Kind == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.cur.Kind {
		case token.CLASS, token.FN, token.LET, token.WHILE, token.LOOP,
			token.FOR, token.IF, token.RETURN:
			return
		}
		p.advance()
	}
}

// readFile is a variable (rather than a direct os.ReadFile call) so tests
// can substitute an in-memory filesystem for import resolution.
var readFile = os.ReadFile

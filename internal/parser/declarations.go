package parser

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// declaration := varDecl | fnDecl | classDecl | statement
func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.LET):
		return p.varDecl()
	case p.match(token.FN):
		return p.fnDecl("function")
	case p.match(token.CLASS):
		return p.classDecl()
	default:
		return p.statement()
	}
}

// varDecl := 'let' IDENT ('=' expression)? ';'
func (p *Parser) varDecl() (ast.Stmt, error) {
	pos := p.cur.Pos
	name, err := p.consume(token.IDENT, "expected variable name after 'let'")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.EQ) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "expected ';' at the end of a statement"); err != nil {
		return nil, err
	}

	return ast.NewVarDecl(pos, name, initializer), nil
}

// fnDecl := 'fn' IDENT '(' params? ')' block
func (p *Parser) fnDecl(kind string) (*ast.FnDecl, error) {
	pos := p.cur.Pos
	name, err := p.consume(token.IDENT, "expected "+kind+" name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LPAREN, "expected '(' after "+kind+" name"); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			param, err := p.consume(token.IDENT, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RPAREN, "expected ')' after parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LBRACE, "expected '{' after "+kind+" signature"); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return ast.NewFnDecl(pos, name, params, body), nil
}

// block parses declaration* followed by the closing '}' (the opening '{'
// has already been consumed by the caller).
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.check(token.RBRACE) && p.cur.Kind != token.EOF {
		stmt, err := p.declaration()
		if err != nil {
			se := err.(syntaxError)
			p.record(se)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(token.RBRACE, "expected '}' at block end"); err != nil {
		return nil, err
	}
	return stmts, nil
}

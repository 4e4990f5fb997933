package parser

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// classDecl := 'class' IDENT (':' IDENT)? ( ';' | '{' methodDecl* '}' )
// methodDecl is a bare function signature: no leading 'fn' keyword, unlike
// top-level function declarations.
func (p *Parser) classDecl() (ast.Stmt, error) {
	pos := p.cur.Pos
	name, err := p.consume(token.IDENT, "expected class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(token.COLON) {
		superTok, err := p.consume(token.IDENT, "expected superclass name")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariable(p.nextID(), pos, superTok)
	}

	if p.match(token.SEMICOLON) {
		return ast.NewClassDecl(pos, name, superclass, nil), nil
	}

	if _, err := p.consume(token.LBRACE, "expected '{' or ';' after class header"); err != nil {
		return nil, err
	}

	var methods []*ast.FnDecl
	for !p.check(token.RBRACE) && p.cur.Kind != token.EOF {
		method, err := p.fnDecl("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(token.RBRACE, "expected closing '}' after class body"); err != nil {
		return nil, err
	}

	return ast.NewClassDecl(pos, name, superclass, methods), nil
}

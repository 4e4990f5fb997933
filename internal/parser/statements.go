package parser

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// statement := block | if | while | loop | for | return | exprStmt
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.LBRACE):
		return p.scopedStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LOOP):
		return p.loopStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) scopedStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewScoped(pos, body), nil
}

// if := 'if' expression statement ('else' statement)?
func (p *Parser) ifStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els ast.Stmt
	if p.match(token.ELSE) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIf(pos, cond, then, els), nil
}

// while := 'while' expression statement
func (p *Parser) whileStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(pos, cond, body), nil
}

// literalTrue synthesizes the Literal(true) condition used by both `loop`
// and a `for` with an omitted condition (spec.md §4.2, SPEC_FULL.md §12.2).
func (p *Parser) literalTrue(pos token.Position) ast.Expr {
	return ast.NewLiteral(p.nextID(), pos, token.Token{Kind: token.TRUE, Lexeme: "true", Pos: pos})
}

// loop := 'loop' statement   -- desugars to while(true) statement
func (p *Parser) loopStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(pos, p.literalTrue(pos), body), nil
}

// for := 'for' '(' (varDecl | exprStmt | ';')
//
//	expression? ';'
//	expression? ')' statement
func (p *Parser) forStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	if _, err := p.consume(token.LPAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.LET):
		initializer, err = p.varDecl()
	default:
		initializer, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if cond == nil {
		cond = p.literalTrue(pos)
	}

	return ast.NewFor(pos, initializer, cond, increment, body), nil
}

// return := 'return' expression? ';'
func (p *Parser) returnStmt() (ast.Stmt, error) {
	keyword := tokenAt(p.cur.Pos, token.RETURN)
	pos := p.cur.Pos

	var value ast.Expr
	var err error
	if !p.check(token.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "expected ';' after return value"); err != nil {
		return nil, err
	}

	return ast.NewReturn(pos, keyword, value), nil
}

// exprStmt := expression ';'
func (p *Parser) exprStmt() (ast.Stmt, error) {
	pos := p.cur.Pos
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(pos, expr), nil
}

func tokenAt(pos token.Position, k token.Kind) token.Token {
	return token.Token{Kind: k, Pos: pos}
}

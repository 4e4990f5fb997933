package parser

import (
	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/cwbudde/go-lbpl/internal/token"
)

// expression := 'break' | 'continue' | assignment
func (p *Parser) expression() (ast.Expr, error) {
	if p.check(token.BREAK) {
		keyword := p.cur
		p.advance()
		return ast.NewBreak(p.nextID(), keyword.Pos, keyword), nil
	}
	if p.check(token.CONTINUE) {
		keyword := p.cur
		p.advance()
		return ast.NewContinue(p.nextID(), keyword.Pos, keyword), nil
	}
	return p.assignment()
}

// assignment := ternary ('=' assignment)?   -- right-associative
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if !p.match(token.EQ) {
		return expr, nil
	}
	eqPos := expr.Pos()

	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *ast.Variable:
		return ast.NewAssign(p.nextID(), eqPos, target.Name, value), nil
	case *ast.GetField:
		return ast.NewSetField(p.nextID(), eqPos, target.Instance, target.Field, value), nil
	default:
		return nil, p.fail(eqPos, "invalid assignment target")
	}
}

// ternary := or ('?' assignment ':' assignment)?
func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(token.QUESTION) {
		return cond, nil
	}

	then, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "expected ':' in ternary expression"); err != nil {
		return nil, err
	}
	els, err := p.assignment()
	if err != nil {
		return nil, err
	}
	return ast.NewTernary(p.nextID(), cond.Pos(), cond, then, els), nil
}

// or := and ('||' and)*
func (p *Parser) or() (ast.Expr, error) {
	return p.leftAssocBinary(p.and, token.OR)
}

// and := equality ('&&' equality)*
func (p *Parser) and() (ast.Expr, error) {
	return p.leftAssocBinary(p.equality, token.AND)
}

// equality := comparison (('==' | '!=') comparison)*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.EQ_EQ, token.BANG_EQ)
}

// comparison := term (('>'|'>='|'<'|'<=') term)*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.GREATER, token.GREATER_EQ, token.LESS, token.LESS_EQ)
}

// term := factor (('+'|'-'|'%') factor)*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.PLUS, token.MINUS, token.PERCENT)
}

// factor := unary (('*'|'/') unary)*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.STAR, token.SLASH)
}

// leftAssocBinary implements a single left-associative precedence level:
// it parses one operand with next, then folds further (op operand) pairs
// into left-leaning Binary nodes as long as the current token's kind is
// one of kinds.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.matchAny(kinds...) {
		op := p.previousOp
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(p.nextID(), expr.Pos(), expr, op, right)
	}
	return expr, nil
}

// matchAny consumes cur and records it as previousOp if its kind is in
// kinds, returning whether it matched.
func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.previousOp = p.cur
			p.advance()
			return true
		}
	}
	return false
}

// unary := ('!'|'-') unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.cur
		p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(p.nextID(), op.Pos, op, right), nil
	}
	return p.call()
}

// call := primary ( '(' args? ')' | '.' IDENT )*
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LPAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.DOT):
			field, err := p.consume(token.IDENT, "expected field or method name after '.'")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGetField(p.nextID(), expr.Pos(), expr, field)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			arg, err := p.assignment()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(token.RPAREN, "expected ')' after argument list")
	if err != nil {
		return nil, err
	}

	return ast.NewCall(p.nextID(), callee.Pos(), callee, paren, args), nil
}

// primary := 'super' '.' IDENT | 'this' | IDENT | NUMBER | STRING | CHAR
//
//	| 'true' | 'false' | 'nil' | '(' expression ')'
func (p *Parser) primary() (ast.Expr, error) {
	if err := p.checkIllegal(); err != nil {
		return nil, err
	}

	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.SUPER:
		keyword := p.cur
		p.advance()
		if _, err := p.consume(token.DOT, "expected '.' after 'super'"); err != nil {
			return nil, err
		}
		field, err := p.consume(token.IDENT, "expected superclass method name after 'super.'")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(p.nextID(), pos, keyword, field), nil

	case token.THIS:
		keyword := p.cur
		p.advance()
		return ast.NewThis(p.nextID(), pos, keyword), nil

	case token.IDENT:
		name := p.cur
		p.advance()
		return ast.NewVariable(p.nextID(), pos, name), nil

	case token.INT, token.FLOAT, token.STRING, token.CHAR, token.TRUE, token.FALSE, token.NIL:
		lit := p.cur
		p.advance()
		return ast.NewLiteral(p.nextID(), pos, lit), nil

	case token.LPAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return ast.NewGrouping(p.nextID(), pos, inner), nil
	}

	return nil, p.fail(pos, "expected an expression but instead got '%s'", p.cur.Kind)
}

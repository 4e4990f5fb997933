package ast

import "github.com/cwbudde/go-lbpl/internal/token"

// Binary is a binary operator expression: left op right.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

// Unary is a prefix operator expression: op right.
type Unary struct {
	exprBase
	Op    token.Token
	Right Expr
}

// Literal wraps a literal token (number, string, char, bool, nil).
type Literal struct {
	exprBase
	Token token.Token
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so pretty-printing round-trips parentheses (spec.md §8).
type Grouping struct {
	exprBase
	Inner Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

// Assign is a simple-name assignment: name = value.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// Ternary is condition ? then : else.
type Ternary struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

// Call is a function/constructor call: callee(args...).
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token // closing ')', used for call-site diagnostics
	Args   []Expr
}

// GetField is a field/method read: instance.field.
type GetField struct {
	exprBase
	Instance Expr
	Field    token.Token
}

// SetField is a field write: instance.field = value.
type SetField struct {
	exprBase
	Instance Expr
	Field    token.Token
	Value    Expr
}

// This is a `this` reference inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

// Super is a `super.field` reference inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Field   token.Token
}

// Break is the `break` expression.
type Break struct {
	exprBase
	Keyword token.Token
}

// Continue is the `continue` expression.
type Continue struct {
	exprBase
	Keyword token.Token
}

func NewBinary(id int, pos token.Position, left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase{pos, id}, left, op, right}
}

func NewUnary(id int, pos token.Position, op token.Token, right Expr) *Unary {
	return &Unary{exprBase{pos, id}, op, right}
}

func NewLiteral(id int, pos token.Position, tok token.Token) *Literal {
	return &Literal{exprBase{pos, id}, tok}
}

func NewGrouping(id int, pos token.Position, inner Expr) *Grouping {
	return &Grouping{exprBase{pos, id}, inner}
}

func NewVariable(id int, pos token.Position, name token.Token) *Variable {
	return &Variable{exprBase{pos, id}, name}
}

func NewAssign(id int, pos token.Position, name token.Token, value Expr) *Assign {
	return &Assign{exprBase{pos, id}, name, value}
}

func NewTernary(id int, pos token.Position, cond, then, els Expr) *Ternary {
	return &Ternary{exprBase{pos, id}, cond, then, els}
}

func NewCall(id int, pos token.Position, callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase{pos, id}, callee, paren, args}
}

func NewGetField(id int, pos token.Position, instance Expr, field token.Token) *GetField {
	return &GetField{exprBase{pos, id}, instance, field}
}

func NewSetField(id int, pos token.Position, instance Expr, field token.Token, value Expr) *SetField {
	return &SetField{exprBase{pos, id}, instance, field, value}
}

func NewThis(id int, pos token.Position, keyword token.Token) *This {
	return &This{exprBase{pos, id}, keyword}
}

func NewSuper(id int, pos token.Position, keyword, field token.Token) *Super {
	return &Super{exprBase{pos, id}, keyword, field}
}

func NewBreak(id int, pos token.Position, keyword token.Token) *Break {
	return &Break{exprBase{pos, id}, keyword}
}

func NewContinue(id int, pos token.Position, keyword token.Token) *Continue {
	return &Continue{exprBase{pos, id}, keyword}
}

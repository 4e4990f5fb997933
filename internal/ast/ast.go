// Package ast defines the LBPL abstract syntax tree. Statements and
// expressions are two disjoint node families (spec.md §3.2); every node
// carries its source position. Expression nodes additionally carry a
// stable ID, stamped by the parser, used by the resolver and interpreter
// as the key for the lexical-depth map (spec.md §3.2, DESIGN NOTES §9) —
// this sidesteps relying on Go interface-value pointer identity.
package ast

import "github.com/cwbudde/go-lbpl/internal/token"

// Node is implemented by every statement and expression.
type Node interface {
	Pos() token.Position
}

// Stmt is a statement node; statements have no value (spec.md §3.2).
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node; expressions yield a value (spec.md §3.2).
// Every Expr has a stable ID used as the resolver/interpreter depth-map key.
type Expr interface {
	Node
	exprNode()
	ID() int
}

// exprBase supplies the position and identity bookkeeping every expression
// variant embeds.
type exprBase struct {
	pos token.Position
	id  int
}

func (e exprBase) Pos() token.Position { return e.pos }
func (e exprBase) ID() int             { return e.id }
func (exprBase) exprNode()             {}

// stmtBase supplies the position bookkeeping every statement variant embeds.
type stmtBase struct {
	pos token.Position
}

func (s stmtBase) Pos() token.Position { return s.pos }
func (stmtBase) stmtNode()             {}

// IDGen assigns increasing expression IDs at parse time; IDs are unique
// among those drawn from one IDGen, not across generators. A fresh IDGen
// per Parser keeps IDs deterministic and reproducible across runs of the
// same source.
type IDGen struct{ next int }

// Next returns the next unused expression ID.
func (g *IDGen) Next() int {
	g.next++
	return g.next
}

// NewIDGen constructs a fresh expression-ID generator for one parse.
func NewIDGen() *IDGen { return &IDGen{} }

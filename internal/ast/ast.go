// Package ast defines the abstract syntax tree for fns.
//
// Nodes keep the tokens they were built from and compute their source span
// on demand by joining the spans of their first and last parts, so a node's
// span always covers the spans of all of its children.
package ast

import (
	"fns-lang/internal/span"
	"fns-lang/internal/token"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ExprBase is embedded by all expression nodes.
type ExprBase struct{}

func (ExprBase) nodeNode() {}
func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{}

func (StmtBase) nodeNode() {}
func (StmtBase) stmtNode() {}

// ============================================================
// Program (top-level AST root)
// ============================================================

// Program is the ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
}

func (*Program) nodeNode() {}

// GetSpan returns the span from the first to the last statement, or the zero
// span for an empty program.
func (p *Program) GetSpan() span.Span {
	if len(p.Stmts) == 0 {
		return span.Span{}
	}
	return span.Join(p.Stmts[0].GetSpan(), p.Stmts[len(p.Stmts)-1].GetSpan())
}

// ============================================================
// Statements
// ============================================================

// LetStmt is a mutable binding: let name = value.
type LetStmt struct {
	StmtBase
	Keyword token.Token
	Name    token.Token
	Value   Expr
}

func (s *LetStmt) GetSpan() span.Span { return span.Join(s.Keyword.Span, s.Value.GetSpan()) }

// ConstStmt is a constant binding: const name = value.
type ConstStmt struct {
	StmtBase
	Keyword token.Token
	Name    token.Token
	Value   Expr
}

func (s *ConstStmt) GetSpan() span.Span { return span.Join(s.Keyword.Span, s.Value.GetSpan()) }

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	StmtBase
	Expr Expr
}

func (s *ExprStmt) GetSpan() span.Span { return s.Expr.GetSpan() }

// ============================================================
// Expressions
// ============================================================

// NoneLiteral represents none.
type NoneLiteral struct {
	ExprBase
	Token token.Token
}

func (e *NoneLiteral) GetSpan() span.Span { return e.Token.Span }

// BoolLiteral represents true or false.
type BoolLiteral struct {
	ExprBase
	Token token.Token
	Value bool
}

func (e *BoolLiteral) GetSpan() span.Span { return e.Token.Span }

// NumberLiteral represents a numeric literal.
type NumberLiteral struct {
	ExprBase
	Token token.Token
	Value float64
}

func (e *NumberLiteral) GetSpan() span.Span { return e.Token.Span }

// StringLiteral represents a string literal. Value is the raw lexeme.
type StringLiteral struct {
	ExprBase
	Token token.Token
	Value string
}

func (e *StringLiteral) GetSpan() span.Span { return e.Token.Span }

// Pair is one key: value entry of an object literal.
type Pair struct {
	Key   token.Token
	Value Expr
}

// GetSpan returns the span from the key to the end of the value.
func (p Pair) GetSpan() span.Span { return span.Join(p.Key.Span, p.Value.GetSpan()) }

// ObjectLiteral represents { key: value, ... }. Duplicate keys are kept in
// source order; the last one wins at evaluation time.
type ObjectLiteral struct {
	ExprBase
	LBrace token.Token
	Pairs  []Pair
	RBrace token.Token
}

func (e *ObjectLiteral) GetSpan() span.Span { return span.Join(e.LBrace.Span, e.RBrace.Span) }

// Ident represents an identifier reference.
type Ident struct {
	ExprBase
	Token token.Token
}

// Name returns the identifier text.
func (e *Ident) Name() string { return e.Token.Lexeme }

func (e *Ident) GetSpan() span.Span { return e.Token.Span }

// AccessExpr represents property access: object.property.
type AccessExpr struct {
	ExprBase
	Object   Expr
	Property token.Token
}

func (e *AccessExpr) GetSpan() span.Span { return span.Join(e.Object.GetSpan(), e.Property.Span) }

// UnaryExpr represents a prefix operation: !x, +x, -x.
type UnaryExpr struct {
	ExprBase
	Op      token.Token
	Operand Expr
}

func (e *UnaryExpr) GetSpan() span.Span { return span.Join(e.Op.Span, e.Operand.GetSpan()) }

// BinaryExpr represents a binary operation: a + b, x == y.
type BinaryExpr struct {
	ExprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) GetSpan() span.Span { return span.Join(e.Left.GetSpan(), e.Right.GetSpan()) }

// AssignExpr represents an assignment to an existing binding: name = value.
type AssignExpr struct {
	ExprBase
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) GetSpan() span.Span { return span.Join(e.Name.Span, e.Value.GetSpan()) }

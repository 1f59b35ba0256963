package ast

import (
	"testing"

	"fns-lang/internal/span"
	"fns-lang/internal/token"
)

func tok(kind token.Kind, lexeme string, start int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Span: span.New(start, start+len(lexeme))}
}

func TestSpansJoinChildren(t *testing.T) {
	// let v = -{a: 1}.a + 2
	obj := &ObjectLiteral{
		LBrace: tok(token.LBRACE, "{", 9),
		Pairs: []Pair{{
			Key:   tok(token.IDENT, "a", 10),
			Value: &NumberLiteral{Token: tok(token.NUMBER, "1", 13), Value: 1},
		}},
		RBrace: tok(token.RBRACE, "}", 14),
	}
	access := &AccessExpr{Object: obj, Property: tok(token.IDENT, "a", 16)}
	neg := &UnaryExpr{Op: tok(token.MINUS, "-", 8), Operand: access}
	sum := &BinaryExpr{
		Left:  neg,
		Op:    tok(token.PLUS, "+", 18),
		Right: &NumberLiteral{Token: tok(token.NUMBER, "2", 20), Value: 2},
	}
	stmt := &LetStmt{Keyword: tok(token.KW_LET, "let", 0), Name: tok(token.IDENT, "v", 4), Value: sum}

	tests := []struct {
		name string
		got  span.Span
		want span.Span
	}{
		{"pair", obj.Pairs[0].GetSpan(), span.New(10, 14)},
		{"object", obj.GetSpan(), span.New(9, 15)},
		{"access", access.GetSpan(), span.New(9, 17)},
		{"unary", neg.GetSpan(), span.New(8, 17)},
		{"binary", sum.GetSpan(), span.New(8, 21)},
		{"let", stmt.GetSpan(), span.New(0, 21)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, tt.got)
		}
	}
}

func TestProgramSpan(t *testing.T) {
	if got := (&Program{}).GetSpan(); got != (span.Span{}) {
		t.Errorf("expected zero span for empty program, got %s", got)
	}

	first := &ExprStmt{Expr: &Ident{Token: tok(token.IDENT, "a", 2)}}
	last := &ExprStmt{Expr: &AssignExpr{
		Name:  tok(token.IDENT, "b", 6),
		Value: &BoolLiteral{Token: tok(token.KW_TRUE, "true", 10), Value: true},
	}}
	if got := (&Program{Stmts: []Stmt{first, last}}).GetSpan(); got != span.New(2, 14) {
		t.Errorf("expected 2..14, got %s", got)
	}
}

func TestNodeToMap(t *testing.T) {
	node := &ConstStmt{
		Keyword: tok(token.KW_CONST, "const", 0),
		Name:    tok(token.IDENT, "s", 6),
		Value:   &StringLiteral{Token: tok(token.STRING, "hi", 11), Value: "hi"},
	}
	m := NodeToMap(node)
	if m["kind"] != "ConstStmt" || m["name"] != "s" {
		t.Fatalf("unexpected map %v", m)
	}
	value, ok := m["value"].(map[string]interface{})
	if !ok || value["kind"] != "StringLiteral" || value["value"] != "hi" {
		t.Errorf("unexpected value map %v", m["value"])
	}
	sp, ok := m["span"].(map[string]interface{})
	if !ok || sp["start"] != 0 || sp["end"] != 13 {
		t.Errorf("unexpected span map %v", m["span"])
	}
	if NodeToMap(nil) != nil {
		t.Error("expected nil map for nil node")
	}
}

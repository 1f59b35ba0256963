package ast

import (
	"fns-lang/internal/span"
)

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		stmts := make([]interface{}, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = NodeToMap(s)
		}
		return m("Program", n.GetSpan(), "body", stmts)

	// ---- Statements ----
	case *LetStmt:
		return m("LetStmt", n.GetSpan(), "name", n.Name.Lexeme, "value", NodeToMap(n.Value))
	case *ConstStmt:
		return m("ConstStmt", n.GetSpan(), "name", n.Name.Lexeme, "value", NodeToMap(n.Value))
	case *ExprStmt:
		return m("ExprStmt", n.GetSpan(), "expr", NodeToMap(n.Expr))

	// ---- Expressions ----
	case *NoneLiteral:
		return m("NoneLiteral", n.GetSpan())
	case *BoolLiteral:
		return m("BoolLiteral", n.GetSpan(), "value", n.Value)
	case *NumberLiteral:
		return m("NumberLiteral", n.GetSpan(), "value", n.Value)
	case *StringLiteral:
		return m("StringLiteral", n.GetSpan(), "value", n.Value)
	case *ObjectLiteral:
		pairs := make([]interface{}, len(n.Pairs))
		for i, p := range n.Pairs {
			pairs[i] = map[string]interface{}{
				"key":   p.Key.Lexeme,
				"span":  spanToMap(p.GetSpan()),
				"value": NodeToMap(p.Value),
			}
		}
		return m("ObjectLiteral", n.GetSpan(), "pairs", pairs)
	case *Ident:
		return m("Ident", n.GetSpan(), "name", n.Name())
	case *AccessExpr:
		return m("AccessExpr", n.GetSpan(),
			"object", NodeToMap(n.Object),
			"property", n.Property.Lexeme)
	case *UnaryExpr:
		return m("UnaryExpr", n.GetSpan(), "op", n.Op.Lexeme, "operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.GetSpan(),
			"op", n.Op.Lexeme,
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *AssignExpr:
		return m("AssignExpr", n.GetSpan(), "name", n.Name.Lexeme, "value", NodeToMap(n.Value))

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": s.Start,
		"end":   s.End,
	}
}

// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"

	"fns-lang/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	EOF Kind = iota

	// Literals
	NUMBER // 2.71
	STRING // "hello"
	IDENT  // x, math, _tmp

	// Operators
	ASSIGN // =
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	BANG   // !

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=

	AND // &&
	OR  // ||

	// Punctuation
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	COLON  // :
	COMMA  // ,
	DOT    // .

	// Keywords
	KW_LET
	KW_CONST
	KW_TRUE
	KW_FALSE
	KW_NONE
)

var kindNames = map[Kind]string{
	EOF: "EOF",

	NUMBER: "NUMBER",
	STRING: "STRING",
	IDENT:  "IDENTIFIER",

	ASSIGN: "=",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	BANG:   "!",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	LTE:    "<=",
	GT:     ">",
	GTE:    ">=",
	AND:    "&&",
	OR:     "||",

	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",
	COLON:  ":",
	COMMA:  ",",
	DOT:    ".",

	KW_LET:   "let",
	KW_CONST: "const",
	KW_TRUE:  "true",
	KW_FALSE: "false",
	KW_NONE:  "none",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Class groups token kinds into the coarse categories reported by tools.
type Class int

const (
	ClassEOF Class = iota
	ClassNumber
	ClassString
	ClassIdentifier
	ClassKeyword
	ClassOperator
	ClassPunctuation
)

var classNames = [...]string{
	ClassEOF:         "eof",
	ClassNumber:      "number",
	ClassString:      "string",
	ClassIdentifier:  "identifier",
	ClassKeyword:     "keyword",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Class returns the category of the kind.
func (k Kind) Class() Class {
	switch {
	case k == EOF:
		return ClassEOF
	case k == NUMBER:
		return ClassNumber
	case k == STRING:
		return ClassString
	case k == IDENT:
		return ClassIdentifier
	case k >= ASSIGN && k <= OR:
		return ClassOperator
	case k >= LPAREN && k <= DOT:
		return ClassPunctuation
	default:
		return ClassKeyword
	}
}

var keywords = map[string]Kind{
	"let":   KW_LET,
	"const": KW_CONST,
	"true":  KW_TRUE,
	"false": KW_FALSE,
	"none":  KW_NONE,
}

// LookupIdent returns the keyword Kind for ident, or IDENT if it is not a keyword.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, text, and source location.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}

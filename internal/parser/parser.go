// Package parser implements the syntax analysis for fns.
// It uses recursive descent with one function per precedence level.
package parser

import (
	"errors"
	"strconv"

	"fns-lang/internal/ast"
	"fns-lang/internal/diag"
	"fns-lang/internal/token"
)

// Parser performs syntax analysis on a stream of tokens.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a new parser from a token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// Parse is a shorthand for New(tokens).Parse().
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).Parse()
}

// Parse consumes statements until EOF. Parsing stops at the first error.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.isAtEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program, nil
}

// ---- navigation helpers ----

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt returns the token offset positions ahead, or the last token (EOF)
// when that runs past the end.
func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.Token{Kind: token.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) peekKind() token.Kind {
	return p.peek().Kind
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	tok := p.peek()
	return tok, diag.Errorf(diag.CodeUnexpectedToken, tok.Span,
		"unexpected %s, expected '%s'", describe(tok), kind)
}

func (p *Parser) isAtEnd() bool {
	return p.peekKind() == token.EOF
}

func (p *Parser) unexpected(tok token.Token) error {
	return diag.Errorf(diag.CodeUnexpectedToken, tok.Span, "unexpected %s", describe(tok))
}

// describe names a token for error messages.
func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return "token '" + tok.Lexeme + "'"
}

// ============================================================
// Statement parsing
// ============================================================

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peekKind() {
	case token.KW_CONST:
		return p.parseConstStmt()
	case token.KW_LET:
		return p.parseLetStmt()
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	}
}

// parseLetStmt parses: let IDENT = expr
func (p *Parser) parseLetStmt() (*ast.LetStmt, error) {
	kw, name, value, err := p.parseBinding(token.KW_LET)
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{Keyword: kw, Name: name, Value: value}, nil
}

// parseConstStmt parses: const IDENT = expr
func (p *Parser) parseConstStmt() (*ast.ConstStmt, error) {
	kw, name, value, err := p.parseBinding(token.KW_CONST)
	if err != nil {
		return nil, err
	}
	return &ast.ConstStmt{Keyword: kw, Name: name, Value: value}, nil
}

func (p *Parser) parseBinding(keyword token.Kind) (kw, name token.Token, value ast.Expr, err error) {
	if kw, err = p.expect(keyword); err != nil {
		return
	}
	if name, err = p.expect(token.IDENT); err != nil {
		return
	}
	if _, err = p.expect(token.ASSIGN); err != nil {
		return
	}
	value, err = p.parseExpr()
	return
}

// ============================================================
// Expression parsing (precedence levels, loosest first)
// ============================================================

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses: IDENT = assignment | logical
// It only applies when the next two tokens are literally an identifier and '='.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	if p.check(token.IDENT) && p.peekAt(1).Kind == token.ASSIGN {
		name := p.advance()
		p.advance() // consume '='
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Name: name, Value: value}, nil
	}
	return p.parseLogical()
}

// Each binary level parses its right operand by recursing into the same
// level, so operators of one level group right to left: a - b - c is
// a - (b - c).

func (p *Parser) parseLogical() (ast.Expr, error) {
	return p.parseBinary(p.parseEquality, p.parseLogical, token.AND, token.OR)
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinary(p.parseRelational, p.parseEquality, token.EQ, token.NEQ)
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.parseBinary(p.parseAdditive, p.parseRelational, token.GT, token.LT, token.GTE, token.LTE)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinary(p.parseMultiplicative, p.parseAdditive, token.PLUS, token.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinary(p.parseUnary, p.parseMultiplicative, token.STAR, token.SLASH)
}

// parseBinary parses operand [op self] for one precedence level.
func (p *Parser) parseBinary(operand, self func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	if !p.match(ops...) {
		return left, nil
	}
	op := p.advance()
	right, err := self()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
}

// parseUnary parses: (! | + | -) unary | primary
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.match(token.BANG, token.PLUS, token.MINUS) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.LPAREN:
		p.advance() // consume '('
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return p.parseAccess(expr)

	case token.KW_NONE:
		p.advance()
		return &ast.NoneLiteral{Token: tok}, nil

	case token.KW_TRUE, token.KW_FALSE:
		p.advance()
		return &ast.BoolLiteral{Token: tok, Value: tok.Kind == token.KW_TRUE}, nil

	case token.NUMBER:
		p.advance()
		// Lexemes too large for float64 parse to +Inf; only malformed ones
		// such as 1.2.3 are rejected.
		val, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, diag.Errorf(diag.CodeInvalidNumber, tok.Span, "invalid number '%s'", tok.Lexeme)
		}
		return &ast.NumberLiteral{Token: tok, Value: val}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil

	case token.LBRACE:
		obj, err := p.parseObjectLiteral()
		if err != nil {
			return nil, err
		}
		return p.parseAccess(obj)

	case token.IDENT:
		p.advance()
		return p.parseAccess(&ast.Ident{Token: tok})

	default:
		return nil, p.unexpected(tok)
	}
}

// parseAccess parses an optional single ". IDENT" suffix. Accesses do not
// chain: a.b.c stops after a.b.
func (p *Parser) parseAccess(object ast.Expr) (ast.Expr, error) {
	if !p.check(token.DOT) {
		return object, nil
	}
	p.advance() // consume '.'
	prop, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.AccessExpr{Object: object, Property: prop}, nil
}

// parseObjectLiteral parses: { [IDENT : expr { , IDENT : expr }] }
// A trailing comma is rejected.
func (p *Parser) parseObjectLiteral() (*ast.ObjectLiteral, error) {
	obj := &ast.ObjectLiteral{LBrace: p.advance()}

	if !p.check(token.RBRACE) {
		for {
			pair, err := p.parsePair()
			if err != nil {
				return nil, err
			}
			obj.Pairs = append(obj.Pairs, pair)
			if p.check(token.RBRACE) {
				break
			}
			if _, err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
		}
	}

	rbrace, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	obj.RBrace = rbrace
	return obj, nil
}

// parsePair parses: IDENT : expr
func (p *Parser) parsePair() (ast.Pair, error) {
	key, err := p.expect(token.IDENT)
	if err != nil {
		return ast.Pair{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.Pair{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.Pair{}, err
	}
	return ast.Pair{Key: key, Value: value}, nil
}

// Package lexer implements the lexical analysis (tokenization) for fns.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"fns-lang/internal/diag"
	"fns-lang/internal/span"
	"fns-lang/internal/token"
)

// Lexer tokenizes source code into a sequence of tokens.
type Lexer struct {
	source string
	pos    int // current read position in source
}

// New creates a new Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokenize scans the entire source and returns all tokens. The last token is
// always EOF. Scanning stops at the first lexical error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Tokenize is a shorthand for New(source).Tokenize().
func Tokenize(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// ---- internal helpers ----

// peek returns the current byte without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// peekNext returns the byte after current, or 0 if at end.
func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

// peekRune decodes the rune at the current position.
func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.source) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.source[l.pos:])
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) makeToken(kind token.Kind, start int) token.Token {
	return token.Token{Kind: kind, Lexeme: l.source[start:l.pos], Span: span.New(start, l.pos)}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// skipLineComment skips from // up to (not including) the next newline.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.pos++
	}
}

// ---- token reading ----

func (l *Lexer) nextToken() (token.Token, error) {
	for {
		l.skipWhitespace()
		if l.peek() == '/' && l.peekNext() == '/' {
			l.skipLineComment()
			continue
		}
		break
	}

	if l.atEnd() {
		return token.Token{Kind: token.EOF, Span: span.New(l.pos, l.pos)}, nil
	}

	ch := l.peek()
	switch {
	case ch == '"':
		return l.readString()
	case isDigit(ch):
		return l.readNumber(), nil
	}

	if r, _ := l.peekRune(); isIdentStart(r) {
		return l.readIdentifier(), nil
	}

	return l.readOperator()
}

// readString reads a double-quoted string literal. The lexeme is the raw text
// between the quotes and the token span covers exactly that text.
func (l *Lexer) readString() (token.Token, error) {
	quote := l.pos
	l.pos++ // skip opening "
	start := l.pos

	for !l.atEnd() {
		switch l.peek() {
		case '"':
			tok := l.makeToken(token.STRING, start)
			l.pos++ // skip closing "
			return tok, nil
		case '\\':
			l.pos++
			if l.atEnd() {
				break
			}
			_, size := l.peekRune()
			l.pos += size
		default:
			_, size := l.peekRune()
			l.pos += size
		}
	}

	return token.Token{}, diag.Errorf(diag.CodeUnterminatedString, span.New(quote, l.pos),
		"unterminated string")
}

// readNumber reads a numeric literal: a digit followed by digits or dots.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	for !l.atEnd() && (isDigit(l.peek()) || l.peek() == '.') {
		l.pos++
	}
	return l.makeToken(token.NUMBER, start)
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	for !l.atEnd() {
		r, size := l.peekRune()
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	lexeme := l.source[start:l.pos]
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Span: span.New(start, l.pos)}
}

// readOperator reads an operator or punctuation token.
func (l *Lexer) readOperator() (token.Token, error) {
	start := l.pos
	ch := l.peek()
	l.pos++

	switch ch {
	case '(':
		return l.makeToken(token.LPAREN, start), nil
	case ')':
		return l.makeToken(token.RPAREN, start), nil
	case '{':
		return l.makeToken(token.LBRACE, start), nil
	case '}':
		return l.makeToken(token.RBRACE, start), nil
	case ':':
		return l.makeToken(token.COLON, start), nil
	case ',':
		return l.makeToken(token.COMMA, start), nil
	case '.':
		return l.makeToken(token.DOT, start), nil
	case '+':
		return l.makeToken(token.PLUS, start), nil
	case '-':
		return l.makeToken(token.MINUS, start), nil
	case '*':
		return l.makeToken(token.STAR, start), nil
	case '/':
		return l.makeToken(token.SLASH, start), nil
	case '=':
		return l.pair('=', token.EQ, token.ASSIGN, start), nil
	case '!':
		return l.pair('=', token.NEQ, token.BANG, start), nil
	case '>':
		return l.pair('=', token.GTE, token.GT, start), nil
	case '<':
		return l.pair('=', token.LTE, token.LT, start), nil
	case '&':
		if l.peek() == '&' {
			l.pos++
			return l.makeToken(token.AND, start), nil
		}
	case '|':
		if l.peek() == '|' {
			l.pos++
			return l.makeToken(token.OR, start), nil
		}
	}

	// Report the whole (possibly multi-byte) character.
	l.pos = start
	r, size := l.peekRune()
	l.pos += size
	return token.Token{}, diag.Errorf(diag.CodeUnexpectedChar, span.New(start, l.pos),
		"unexpected character '%c'", r)
}

// pair emits double when the next byte is next, otherwise single.
func (l *Lexer) pair(next byte, double, single token.Kind, start int) token.Token {
	if l.peek() == next {
		l.pos++
		return l.makeToken(double, start)
	}
	return l.makeToken(single, start)
}

// ---- character classification ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || unicode.IsNumber(r)
}

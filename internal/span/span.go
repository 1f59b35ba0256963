// Package span provides source span types used across the interpreter.
package span

import (
	"fmt"
	"unicode/utf8"
)

// Span represents a half-open byte range in source code [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Join returns the span running from the start of a to the end of b.
func Join(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}

// Covers reports whether s fully contains other.
func (s Span) Covers(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Position represents a resolved position in source code.
type Position struct {
	Offset int `json:"offset"` // byte offset from beginning of source
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number, counted in characters
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate resolves a byte offset into a line and column by scanning the
// characters of source that precede it.
func Locate(source string, offset int) Position {
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < len(source) && i < offset; {
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += size
	}
	return pos
}

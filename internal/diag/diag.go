// Package diag provides the diagnostic (error) type shared by the lexer,
// parser and evaluator.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"fns-lang/internal/span"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Stable diagnostic codes. E1xxx are lexical, E2xxx syntactic, E3xxx runtime.
const (
	CodeUnexpectedChar     = "E1001"
	CodeUnterminatedString = "E1002"

	CodeUnexpectedToken = "E2001"
	CodeInvalidNumber   = "E2002"

	CodeUndefinedVariable = "E3001"
	CodeUndefinedProperty = "E3002"
	CodeNotAccessible     = "E3003"
	CodeUnaryOperand      = "E3004"
	CodeBinaryOperands    = "E3005"
	CodeDivideByZero      = "E3006"
	CodeConstAssign       = "E3007"
	CodeUndefinedAssign   = "E3008"
)

// Diagnostic is the single error kind of the interpreter: a message anchored
// at a source span.
type Diagnostic struct {
	Code     string    `json:"code"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Span     span.Span `json:"span"`
	Hint     string    `json:"hint,omitempty"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	msg := fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, d.Span, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// WithHint returns d with its hint set; an empty hint leaves d untouched.
func (d *Diagnostic) WithHint(hint string) *Diagnostic {
	if hint != "" {
		d.Hint = hint
	}
	return d
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// Render formats err against the source it came from:
//
//	[error in line: L, column: C]
//	Error: message
//
// Errors that are not diagnostics are rendered without a location.
func Render(err error, source string) string {
	var d *Diagnostic
	if !errors.As(err, &d) {
		return "Error: " + err.Error()
	}

	pos := span.Locate(source, d.Span.Start)
	var b strings.Builder
	fmt.Fprintf(&b, "[error in line: %d, column: %d]\n", pos.Line, pos.Column)
	fmt.Fprintf(&b, "Error: %s", d.Message)
	if d.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", d.Hint)
	}
	return b.String()
}

package diag

import (
	"errors"
	"fmt"
	"testing"

	"fns-lang/internal/span"
)

func TestRender(t *testing.T) {
	err := Errorf(CodeUndefinedVariable, span.New(4, 7), "can't access the variable 'efg' as it's not defined")
	got := Render(err, "a\nbcd efg")
	want := "[error in line: 2, column: 3]\nError: can't access the variable 'efg' as it's not defined"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderWithHint(t *testing.T) {
	err := Errorf(CodeUndefinedVariable, span.New(0, 3), "can't access the variable 'mth' as it's not defined").
		WithHint("did you mean 'math'?")
	got := Render(err, "mth.pi")
	want := "[error in line: 1, column: 1]\nError: can't access the variable 'mth' as it's not defined\nHint: did you mean 'math'?"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderCountsCharacters(t *testing.T) {
	// "变量" is six bytes but two characters.
	err := Errorf(CodeUnexpectedChar, span.New(7, 8), "unexpected character '#'")
	got := Render(err, "变量 #")
	want := "[error in line: 1, column: 4]\nError: unexpected character '#'"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderWrappedAndPlainErrors(t *testing.T) {
	inner := Errorf(CodeDivideByZero, span.New(2, 3), "can't divide by 0")
	wrapped := fmt.Errorf("run: %w", inner)
	if got := Render(wrapped, "1 / 0"); got != "[error in line: 1, column: 3]\nError: can't divide by 0" {
		t.Errorf("unexpected rendering %q", got)
	}

	if got := Render(errors.New("boom"), ""); got != "Error: boom" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Errorf(CodeConstAssign, span.New(0, 5), "can't assign the variable '%s' as it's a constant", "a")
	if got := d.Error(); got != "[E3007] error at 0..5: can't assign the variable 'a' as it's a constant" {
		t.Errorf("unexpected Error() %q", got)
	}
	if d.Severity != Error || Severity(1).String() != "unknown" {
		t.Errorf("unexpected severity %s", d.Severity)
	}
	if d.WithHint("").Hint != "" {
		t.Error("empty hint was set")
	}
	if got := d.WithHint("h").Error(); got != "[E3007] error at 0..5: can't assign the variable 'a' as it's a constant (hint: h)" {
		t.Errorf("unexpected Error() %q", got)
	}
}

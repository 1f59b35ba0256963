package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"fns-lang/internal/diag"
	"fns-lang/internal/span"
	"fns-lang/internal/token"
)

// ---- output helpers ----

func (a *app) printJSON(v interface{}) {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(a.stderr, "error: JSON encoding failed: %v\n", err)
	}
}

// reportError prints err rendered against source on stderr.
func (a *app) reportError(err error, source string) {
	fmt.Fprintln(a.stderr, diag.Render(err, source))
}

func diagnosticsToSlice(err error, source string) []map[string]interface{} {
	result := []map[string]interface{}{}
	if err == nil {
		return result
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		return append(result, map[string]interface{}{
			"severity": diag.Error.String(),
			"message":  err.Error(),
		})
	}
	pos := span.Locate(source, d.Span.Start)
	entry := map[string]interface{}{
		"code":     d.Code,
		"severity": d.Severity.String(),
		"message":  d.Message,
		"line":     pos.Line,
		"column":   pos.Column,
		"span":     d.Span,
	}
	if d.Hint != "" {
		entry["hint"] = d.Hint
	}
	return append(result, entry)
}

// ---- token output helpers ----

func (a *app) printTokensText(tokens []token.Token, source string) {
	for _, tok := range tokens {
		pos := span.Locate(source, tok.Span.Start)
		fmt.Fprintf(a.stdout, "%-12s %-20s %d:%d\n", tok.Kind, tok.Lexeme, pos.Line, pos.Column)
	}
}

func tokensToSlice(tokens []token.Token, source string) []map[string]interface{} {
	result := make([]map[string]interface{}, len(tokens))
	for i, tok := range tokens {
		pos := span.Locate(source, tok.Span.Start)
		result[i] = map[string]interface{}{
			"kind":   tok.Kind.String(),
			"class":  tok.Kind.Class().String(),
			"lexeme": tok.Lexeme,
			"span":   tok.Span,
			"line":   pos.Line,
			"column": pos.Column,
		}
	}
	return result
}

package main

import (
	"fmt"
	"io"
	"strings"

	"fns-lang/internal/diag"
	"fns-lang/internal/lexer"
	"fns-lang/internal/runtime"
	"fns-lang/internal/token"

	"github.com/chzyer/readline"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// paint wraps s in color when colors are enabled.
func (a *app) paint(color, s string) string {
	if !a.cfg.Color {
		return s
	}
	return color + s + colorReset
}

// ---- repl command ----

func (a *app) cmdRepl() int {
	prompt := a.paint(colorGreen, a.cfg.Prompt)
	continuation := a.paint(colorGray, "...   ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       a.cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "readline init failed: %v\n", err)
		return exitError
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		a.paint(colorBold+colorCyan, "fns repl v"+runtime.Version),
		a.paint(colorGray, "(type 'exit' or press Ctrl+D to quit)"))

	interp := runtime.NewInterpreter(a.logger)
	var accumulated strings.Builder
	braceDepth := 0

	for {
		if braceDepth > 0 {
			rl.SetPrompt(continuation)
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				// Ctrl+C drops the pending input.
				accumulated.Reset()
				braceDepth = 0
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		if braceDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		// An object literal may span several lines.
		accumulated.WriteString(line)
		accumulated.WriteString("\n")
		braceDepth = openBraces(accumulated.String())
		if braceDepth > 0 {
			continue
		}

		source := accumulated.String()
		accumulated.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		a.evalEntry(interp, source, rl.Stdout(), rl.Stderr())
	}
	return exitOK
}

// openBraces reports how many object literals are still open at the end of
// source. Braces inside strings do not count, and source that fails to lex is
// treated as complete so the error surfaces right away.
func openBraces(source string) int {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return 0
	}
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
	}
	return depth
}

// evalEntry runs one REPL entry and prints its value or its diagnostic. A
// failed entry leaves the session environment as it was.
func (a *app) evalEntry(interp *runtime.Interpreter, source string, out, errOut io.Writer) {
	val, err := interp.RunSource(source)
	if err != nil {
		fmt.Fprintln(errOut, a.paint(colorRed, diag.Render(err, source)))
		return
	}
	fmt.Fprintln(out, val)
}

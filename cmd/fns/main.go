// Command fns is the CLI entry point for the fns language.
//
// Usage:
//
//	fns                          Start the interactive REPL
//	fns <file>                   Run a source file
//	fns run    <file>            Run a source file and print its value
//	fns tokens <file> [--json]   Print tokens
//	fns parse  <file>            Print AST as JSON
//	fns repl                     Start the interactive REPL
//
// Global flags: --config <path>, --debug.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fns-lang/internal/ast"
	"fns-lang/internal/config"
	"fns-lang/internal/lexer"
	"fns-lang/internal/parser"
	"fns-lang/internal/runtime"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 65
)

// app carries what every command needs.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	configPath := fs.String("config", "", "path to a YAML config file")
	debug := fs.Bool("debug", false, "trace evaluation on stderr")
	jsonMode := fs.Bool("json", false, "print tokens as JSON (tokens only)")

	// Flags may appear before, between or after the positional arguments.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return exitOK
			}
			return exitUsage
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if *jsonMode && (len(positional) == 0 || positional[0] != "tokens") {
		fmt.Fprintln(stderr, "error: --json is only supported by 'tokens'")
		usage(stderr)
		return exitUsage
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	level := slog.LevelWarn
	if *debug || cfg.Debug {
		level = slog.LevelDebug
	}
	a := &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if cfg.Path != "" {
		a.logger.Debug("config loaded", "path", cfg.Path)
	}

	if len(positional) == 0 {
		return a.cmdRepl()
	}

	command := positional[0]
	switch command {
	case "tokens", "parse", "run":
		if len(positional) != 2 {
			fmt.Fprintf(stderr, "error: '%s' expects exactly one file argument\n", command)
			usage(stderr)
			return exitUsage
		}
		source, err := readFile(positional[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		switch command {
		case "tokens":
			return a.cmdTokens(source, *jsonMode)
		case "parse":
			return a.cmdParse(source)
		default:
			return a.cmdRun(source, true)
		}
	case "repl":
		if len(positional) != 1 {
			usage(stderr)
			return exitUsage
		}
		return a.cmdRepl()
	default:
		if len(positional) != 1 {
			fmt.Fprintln(stderr, "error: unknown number of arguments")
			usage(stderr)
			return exitUsage
		}
		source, err := readFile(command)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		return a.cmdRun(source, false)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fns                          Start the interactive REPL")
	fmt.Fprintln(w, "  fns <file>                   Run a source file")
	fmt.Fprintln(w, "  fns run    <file>            Run a source file and print its value")
	fmt.Fprintln(w, "  fns tokens <file> [--json]   Tokenize and print tokens")
	fmt.Fprintln(w, "  fns parse  <file>            Parse and print AST (JSON)")
	fmt.Fprintln(w, "  fns repl                     Start the interactive REPL")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --config <path>              Read settings from a YAML file")
	fmt.Fprintln(w, "  --debug                      Trace evaluation on stderr")
}

func readFile(filename string) (string, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return string(source), nil
}

// ---- tokens command ----

func (a *app) cmdTokens(source string, jsonMode bool) int {
	tokens, err := lexer.Tokenize(source)

	if jsonMode {
		a.printJSON(map[string]interface{}{
			"tokens":      tokensToSlice(tokens, source),
			"diagnostics": diagnosticsToSlice(err, source),
		})
	} else {
		a.printTokensText(tokens, source)
		if err != nil {
			a.reportError(err, source)
		}
	}

	if err != nil {
		return exitError
	}
	return exitOK
}

// ---- parse command ----

func (a *app) cmdParse(source string) int {
	tokens, err := lexer.Tokenize(source)
	var program *ast.Program
	if err == nil {
		program, err = parser.Parse(tokens)
	}

	output := map[string]interface{}{
		"ast":         nil,
		"diagnostics": diagnosticsToSlice(err, source),
	}
	if program != nil {
		output["ast"] = ast.NodeToMap(program)
	}
	a.printJSON(output)

	if err != nil {
		return exitError
	}
	return exitOK
}

// ---- run command ----

func (a *app) cmdRun(source string, printValue bool) int {
	interp := runtime.NewInterpreter(a.logger)
	val, err := interp.RunSource(source)
	if err != nil {
		a.reportError(err, source)
		return exitError
	}
	if printValue {
		fmt.Fprintln(a.stdout, val)
	}
	return exitOK
}

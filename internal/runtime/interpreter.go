package runtime

import (
	"io"
	"log/slog"

	"fns-lang/internal/ast"
	"fns-lang/internal/diag"
	"fns-lang/internal/lexer"
	"fns-lang/internal/parser"
	"fns-lang/internal/token"
)

// ============================================================
// Evaluation entry point
// ============================================================

// Evaluate runs program in a new scope chained to parent (or in a fresh root
// scope when parent is nil). It returns the value of the last statement, none
// for an empty program, and the scope the program ran in. The first error
// stops evaluation.
func Evaluate(program *ast.Program, parent *Environment) (Value, *Environment, error) {
	return evaluate(program, parent, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func evaluate(program *ast.Program, parent *Environment, logger *slog.Logger) (Value, *Environment, error) {
	ev := &evaluator{env: NewEnvironment(parent), log: logger}
	ev.log.Debug("scope created", "frame", int(ev.env.Frame()), "chained", parent != nil)

	var result Value = NoneVal{}
	for _, stmt := range program.Stmts {
		val, err := ev.execStmt(stmt)
		if err != nil {
			ev.log.Debug("statement failed", "span", stmt.GetSpan().String(), "err", err)
			return nil, nil, err
		}
		ev.log.Debug("statement done", "span", stmt.GetSpan().String(), "type", val.TypeName())
		result = val
	}
	return result, ev.env, nil
}

// ============================================================
// Interpreter
// ============================================================

// Interpreter threads one environment across successive programs, the way
// the REPL runs line after line.
type Interpreter struct {
	env    *Environment
	logger *slog.Logger
}

// NewInterpreter creates a session with a fresh root environment. A nil
// logger discards trace output.
func NewInterpreter(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Interpreter{env: NewEnvironment(nil), logger: logger}
}

// Env returns the current session environment.
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Run evaluates program against the session environment. On success the
// session continues in the program's scope; on failure it is left unchanged.
func (i *Interpreter) Run(program *ast.Program) (Value, error) {
	val, env, err := evaluate(program, i.env, i.logger)
	if err != nil {
		return nil, err
	}
	i.env = env
	return val, nil
}

// RunSource tokenizes, parses and runs source.
func (i *Interpreter) RunSource(source string) (Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return i.Run(program)
}

// ============================================================
// Statement execution
// ============================================================

type evaluator struct {
	env *Environment
	log *slog.Logger
}

func (ev *evaluator) execStmt(stmt ast.Stmt) (Value, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return ev.execBinding(s.Name, s.Value, false)
	case *ast.ConstStmt:
		return ev.execBinding(s.Name, s.Value, true)
	case *ast.ExprStmt:
		return ev.evalExpr(s.Expr)
	default:
		panic("runtime: unknown statement type")
	}
}

// execBinding defines name in the current frame. A name bound only in an
// outer frame is shadowed, not changed.
func (ev *evaluator) execBinding(name token.Token, expr ast.Expr, isConst bool) (Value, error) {
	val, err := ev.evalExpr(expr)
	if err != nil {
		return nil, err
	}
	ev.env.Define(name.Lexeme, val, isConst)
	return NoneVal{}, nil
}

// ============================================================
// Expression evaluation
// ============================================================

func (ev *evaluator) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.NoneLiteral:
		return NoneVal{}, nil
	case *ast.BoolLiteral:
		return BoolVal(e.Value), nil
	case *ast.NumberLiteral:
		return NumberVal(e.Value), nil
	case *ast.StringLiteral:
		return StringVal(e.Value), nil
	case *ast.ObjectLiteral:
		return ev.evalObject(e)
	case *ast.Ident:
		return ev.evalIdent(e)
	case *ast.AccessExpr:
		return ev.evalAccess(e)
	case *ast.UnaryExpr:
		return ev.evalUnary(e)
	case *ast.BinaryExpr:
		return ev.evalBinary(e)
	case *ast.AssignExpr:
		return ev.evalAssign(e)
	default:
		panic("runtime: unknown expression type")
	}
}

func (ev *evaluator) evalObject(e *ast.ObjectLiteral) (Value, error) {
	obj := NewObject()
	for _, pair := range e.Pairs {
		val, err := ev.evalExpr(pair.Value)
		if err != nil {
			return nil, err
		}
		obj.Set(pair.Key.Lexeme, val)
	}
	return obj, nil
}

func (ev *evaluator) evalIdent(e *ast.Ident) (Value, error) {
	val, ok := ev.env.Access(e.Name())
	if !ok {
		return nil, diag.Errorf(diag.CodeUndefinedVariable, e.GetSpan(),
			"can't access the variable '%s' as it's not defined", e.Name()).
			WithHint(didYouMean(e.Name(), ev.env.Names()))
	}
	return val, nil
}

func (ev *evaluator) evalAccess(e *ast.AccessExpr) (Value, error) {
	target, err := ev.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	obj, ok := target.(*ObjectVal)
	if !ok {
		return nil, diag.Errorf(diag.CodeNotAccessible, e.GetSpan(),
			"can't access property of '%s' as it's not accessible", target)
	}
	name := e.Property.Lexeme
	val, ok := obj.Get(name)
	if !ok {
		return nil, diag.Errorf(diag.CodeUndefinedProperty, e.GetSpan(),
			"can't access the property '%s' as it's not defined", name).
			WithHint(didYouMean(name, obj.Keys()))
	}
	return val, nil
}

func (ev *evaluator) evalUnary(e *ast.UnaryExpr) (Value, error) {
	operand, err := ev.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}

	switch v := operand.(type) {
	case BoolVal:
		if e.Op.Kind == token.BANG {
			return !v, nil
		}
	case NumberVal:
		switch e.Op.Kind {
		case token.PLUS:
			return v, nil
		case token.MINUS:
			return -v, nil
		}
	}
	return nil, diag.Errorf(diag.CodeUnaryOperand, e.GetSpan(),
		"can't use '%s' with '%s'", e.Op.Lexeme, operand)
}

// evalBinary evaluates both operands, left first, before dispatching on the
// operator and operand types. && and || do not short-circuit.
func (ev *evaluator) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQ:
		return BoolVal(Equal(left, right)), nil
	case token.NEQ:
		return BoolVal(!Equal(left, right)), nil
	}

	switch l := left.(type) {
	case StringVal:
		if r, ok := right.(StringVal); ok && e.Op.Kind == token.PLUS {
			return l + r, nil
		}
	case NumberVal:
		if r, ok := right.(NumberVal); ok {
			if val, ok, err := ev.numeric(e, l, r); ok || err != nil {
				return val, err
			}
		}
	case BoolVal:
		if r, ok := right.(BoolVal); ok {
			switch e.Op.Kind {
			case token.AND:
				return l && r, nil
			case token.OR:
				return l || r, nil
			}
		}
	}
	return nil, diag.Errorf(diag.CodeBinaryOperands, e.GetSpan(),
		"can't use '%s' with '%s' and '%s'", e.Op.Lexeme, left, right)
}

// numeric applies an arithmetic or comparison operator to two numbers. The
// second result is false when the operator does not apply to numbers.
func (ev *evaluator) numeric(e *ast.BinaryExpr, l, r NumberVal) (Value, bool, error) {
	switch e.Op.Kind {
	case token.PLUS:
		return l + r, true, nil
	case token.MINUS:
		return l - r, true, nil
	case token.STAR:
		return l * r, true, nil
	case token.SLASH:
		if r == 0 {
			return nil, false, diag.Errorf(diag.CodeDivideByZero, e.GetSpan(), "can't divide by 0")
		}
		return l / r, true, nil
	case token.GT:
		return BoolVal(l > r), true, nil
	case token.LT:
		return BoolVal(l < r), true, nil
	case token.GTE:
		return BoolVal(l >= r), true, nil
	case token.LTE:
		return BoolVal(l <= r), true, nil
	default:
		return nil, false, nil
	}
}

// evalAssign rebinds a mutable name. The new binding is written to the
// current frame, shadowing the frame the name was found in.
func (ev *evaluator) evalAssign(e *ast.AssignExpr) (Value, error) {
	name := e.Name.Lexeme
	isConst, ok := ev.env.IsConstant(name)
	if !ok {
		return nil, diag.Errorf(diag.CodeUndefinedAssign, e.GetSpan(),
			"can't assign to the variable '%s' as it's not defined", name).
			WithHint(didYouMean(name, ev.env.Names()))
	}
	if isConst {
		return nil, diag.Errorf(diag.CodeConstAssign, e.GetSpan(),
			"can't assign the variable '%s' as it's a constant", name)
	}

	val, err := ev.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	ev.env.Define(name, val, false)
	return Copy(val), nil
}

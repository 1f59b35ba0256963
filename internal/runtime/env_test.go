package runtime

import (
	"slices"
	"testing"
)

func TestEnvironmentRootHasBuiltins(t *testing.T) {
	env := NewEnvironment(nil)
	for _, name := range []string{"fns", "math"} {
		isConst, ok := env.IsConstant(name)
		if !ok || !isConst {
			t.Errorf("%s: expected constant built-in, got const=%v bound=%v", name, isConst, ok)
		}
	}
	if env.Parent() != nil {
		t.Error("root environment has a parent")
	}
}

func TestEnvironmentLookupWalksChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", NumberVal(1), false)

	child := NewEnvironment(root)
	child.Define("b", StringVal("x"), true)

	if child.Parent() == nil || child.Parent().Frame() != root.Frame() {
		t.Fatal("child is not chained to root")
	}
	if v, ok := child.Access("a"); !ok || !Equal(v, NumberVal(1)) {
		t.Errorf("expected a = 1 through the chain, got %v", v)
	}
	if _, ok := root.Access("b"); ok {
		t.Error("parent sees a child binding")
	}
	if isConst, ok := child.IsConstant("b"); !ok || !isConst {
		t.Error("expected b to be constant")
	}
	if _, ok := child.IsConstant("missing"); ok {
		t.Error("expected missing to be unbound")
	}
}

func TestEnvironmentDefineOverwritesCurrentFrame(t *testing.T) {
	env := NewEnvironment(NewEnvironment(nil))
	env.Define("a", NumberVal(1), true)
	env.Define("a", NumberVal(2), false)

	v, _ := env.Access("a")
	if !Equal(v, NumberVal(2)) {
		t.Errorf("expected 2, got %s", v)
	}
	if isConst, _ := env.IsConstant("a"); isConst {
		t.Error("overwrite kept the old constant flag")
	}
}

func TestEnvironmentSiblingsShareArena(t *testing.T) {
	root := NewEnvironment(nil)
	left := NewEnvironment(root)
	right := NewEnvironment(root)
	left.Define("only", BoolVal(true), false)

	if left.scopes != right.scopes {
		t.Fatal("siblings use different arenas")
	}
	if left.Frame() == right.Frame() {
		t.Fatal("siblings share a frame")
	}
	if _, ok := right.Access("only"); ok {
		t.Error("sibling frame binding leaked")
	}
}

func TestEnvironmentNames(t *testing.T) {
	env := NewEnvironment(NewEnvironment(nil))
	env.Define("zeta", NoneVal{}, false)
	env.Define("fns", NoneVal{}, false)

	want := []string{"fns", "math", "zeta"}
	if got := env.Names(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFindClosestMatch(t *testing.T) {
	tests := []struct {
		target     string
		candidates []string
		want       string
	}{
		{"mth", []string{"fns", "math"}, "math"},
		{"cnt", []string{"count", "total"}, "count"},
		{"pie", []string{"e", "pi"}, "pi"},
		{"qqqq", []string{"fns", "math"}, ""},
		{"a", nil, ""},
		{"a", []string{"fns", "math"}, ""},
		{"e", []string{"pi", "sqrt", "e"}, "e"},
		{"ab", []string{"math", "abs"}, "abs"},
	}
	for _, tt := range tests {
		if got := findClosestMatch(tt.target, tt.candidates); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.target, tt.want, got)
		}
	}
	if hint := didYouMean("mth", []string{"math"}); hint != "did you mean 'math'?" {
		t.Errorf("unexpected hint %q", hint)
	}
	if hint := didYouMean("a", []string{"fns", "math"}); hint != "" {
		t.Errorf("expected no hint for a one-letter name, got %q", hint)
	}
}

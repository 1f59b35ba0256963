package runtime

import "math"

// Version is the language version reported by the fns built-in.
const Version = "0.0.1"

// registerBuiltins seeds a root frame with the constant namespaces
// fns = {version} and math = {pi, e}.
func registerBuiltins(env *Environment) {
	meta := NewObject()
	meta.Set("version", StringVal(Version))
	env.Define("fns", meta, true)

	m := NewObject()
	m.Set("pi", NumberVal(math.Pi))
	m.Set("e", NumberVal(math.E))
	env.Define("math", m, true)
}

package runtime

import "sort"

// FrameID indexes a frame inside an arena. The root frame has no parent.
type FrameID int

const noFrame FrameID = -1

type binding struct {
	value   Value
	isConst bool
}

type frame struct {
	parent FrameID
	vars   map[string]binding
}

// arena owns every frame of one scope chain. Frames are never freed.
type arena struct {
	frames []frame
}

func (a *arena) alloc(parent FrameID) FrameID {
	a.frames = append(a.frames, frame{parent: parent, vars: make(map[string]binding)})
	return FrameID(len(a.frames) - 1)
}

// lookup walks from id to the root and returns the first binding for name.
func (a *arena) lookup(id FrameID, name string) (binding, bool) {
	for ; id != noFrame; id = a.frames[id].parent {
		if b, ok := a.frames[id].vars[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

// Environment is a handle to one frame of a scope chain.
// It is not safe for concurrent use.
type Environment struct {
	scopes *arena
	frame  FrameID
}

// NewEnvironment creates a scope. With a nil parent it starts a new chain
// whose root frame holds the built-ins; otherwise the new frame is chained to
// parent and shares its arena.
func NewEnvironment(parent *Environment) *Environment {
	if parent == nil {
		a := &arena{}
		root := &Environment{scopes: a, frame: a.alloc(noFrame)}
		registerBuiltins(root)
		return root
	}
	return &Environment{scopes: parent.scopes, frame: parent.scopes.alloc(parent.frame)}
}

// Frame returns the handle of the frame this environment writes to.
func (e *Environment) Frame() FrameID {
	return e.frame
}

// Parent returns the enclosing environment, or nil for the root.
func (e *Environment) Parent() *Environment {
	p := e.scopes.frames[e.frame].parent
	if p == noFrame {
		return nil
	}
	return &Environment{scopes: e.scopes, frame: p}
}

// Define inserts or overwrites name in the current frame.
func (e *Environment) Define(name string, value Value, isConst bool) {
	e.scopes.frames[e.frame].vars[name] = binding{value: Copy(value), isConst: isConst}
}

// Access returns a copy of the value bound to name in the nearest frame.
func (e *Environment) Access(name string) (Value, bool) {
	b, ok := e.scopes.lookup(e.frame, name)
	if !ok {
		return nil, false
	}
	return Copy(b.value), true
}

// IsConstant reports whether the nearest binding of name is constant. The
// second result is false when name is unbound.
func (e *Environment) IsConstant(name string) (bool, bool) {
	b, ok := e.scopes.lookup(e.frame, name)
	if !ok {
		return false, false
	}
	return b.isConst, true
}

// Names returns every name visible from this frame, sorted.
func (e *Environment) Names() []string {
	seen := make(map[string]struct{})
	for id := e.frame; id != noFrame; id = e.scopes.frames[id].parent {
		for name := range e.scopes.frames[id].vars {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

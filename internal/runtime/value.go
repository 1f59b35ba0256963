// Package runtime implements the environment, value system and tree-walking
// evaluator for fns.
package runtime

import (
	"sort"
	"strconv"
	"strings"
)

// Value is the interface for all runtime values.
type Value interface {
	TypeName() string
	String() string
}

// ---- Primitive values ----

// NoneVal represents none.
type NoneVal struct{}

func (v NoneVal) TypeName() string { return "none" }
func (v NoneVal) String() string   { return "none" }

// BoolVal represents a boolean value.
type BoolVal bool

func (v BoolVal) TypeName() string { return "boolean" }
func (v BoolVal) String() string   { return strconv.FormatBool(bool(v)) }

// NumberVal represents a double-precision number.
type NumberVal float64

func (v NumberVal) TypeName() string { return "number" }
func (v NumberVal) String() string   { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

// StringVal represents a string value.
type StringVal string

func (v StringVal) TypeName() string { return "string" }
func (v StringVal) String() string   { return string(v) }

// ---- Object value ----

// ObjectVal is a mapping from property name to value. Key order is not
// significant; String prints keys sorted.
type ObjectVal struct {
	Props map[string]Value
}

// NewObject returns an empty object.
func NewObject() *ObjectVal {
	return &ObjectVal{Props: make(map[string]Value)}
}

func (v *ObjectVal) TypeName() string { return "object" }

func (v *ObjectVal) String() string {
	keys := v.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		val := v.Props[k]
		if s, ok := val.(StringVal); ok {
			parts[i] = k + ": " + strconv.Quote(string(s))
		} else {
			parts[i] = k + ": " + val.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Keys returns the property names in sorted order.
func (v *ObjectVal) Keys() []string {
	keys := make([]string, 0, len(v.Props))
	for k := range v.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a copy of the named property.
func (v *ObjectVal) Get(name string) (Value, bool) {
	val, ok := v.Props[name]
	if !ok {
		return nil, false
	}
	return Copy(val), true
}

// Set stores a copy of val under name, replacing any existing property.
func (v *ObjectVal) Set(name string, val Value) {
	v.Props[name] = Copy(val)
}

// ---- Copying and equality ----

// Copy returns a deep copy of v. Primitives are immutable and returned as is;
// objects are cloned recursively so no two holders share storage.
func Copy(v Value) Value {
	obj, ok := v.(*ObjectVal)
	if !ok {
		return v
	}
	clone := &ObjectVal{Props: make(map[string]Value, len(obj.Props))}
	for k, val := range obj.Props {
		clone.Props[k] = Copy(val)
	}
	return clone
}

// Equal reports structural equality. Values of different types are never
// equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NoneVal:
		_, ok := b.(NoneVal)
		return ok
	case BoolVal:
		bv, ok := b.(BoolVal)
		return ok && av == bv
	case NumberVal:
		bv, ok := b.(NumberVal)
		return ok && av == bv
	case StringVal:
		bv, ok := b.(StringVal)
		return ok && av == bv
	case *ObjectVal:
		bv, ok := b.(*ObjectVal)
		if !ok || len(av.Props) != len(bv.Props) {
			return false
		}
		for k, val := range av.Props {
			other, exists := bv.Props[k]
			if !exists || !Equal(val, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

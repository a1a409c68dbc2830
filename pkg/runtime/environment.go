package runtime

import "fmt"

// Binding is a (declared-type, current-value) pair stored in a scope under
// a name. DeclaredType is one of "string", "int", "float", "bool",
// "list", "dict".
type Binding struct {
	DeclaredType string
	Value        Value
}

// Environment is one node in the lexical-scope chain: a name-unique
// mapping from identifier to binding, plus an optional parent. Adapted
// from the teacher's parent-chained map, with one deliberate behavior
// change: Define rejects redefinition in the current scope instead of
// silently overwriting it (see DESIGN.md).
type Environment struct {
	values map[string]*Binding
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a
// parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]*Binding),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil at the global scope).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define introduces a new binding in the current scope. It fails if the
// name already exists in this scope — shadowing outer scopes is fine,
// but redefinition at the same scope is always rejected.
func (e *Environment) Define(name, declaredType string, value Value) error {
	if _, exists := e.values[name]; exists {
		return fmt.Errorf("'%s' is already defined in this scope", name)
	}
	e.values[name] = &Binding{DeclaredType: declaredType, Value: value}
	return nil
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (*Binding, error) {
	if b, ok := e.values[name]; ok {
		return b, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// Set mutates the nearest binding found for name, walking outward through
// the scope chain. It fails if no binding exists anywhere on the chain.
func (e *Environment) Set(name string, value Value) error {
	if b, ok := e.values[name]; ok {
		b.Value = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Set(name, value)
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// Extend creates a new child scope of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

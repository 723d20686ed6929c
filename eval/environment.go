package eval

import "sort"

// Environment maps names to values. A function call runs in a fresh
// frame whose outer is the caller's environment: the callee sees every
// binding of the caller, and anything it defines lands in its own
// frame, which is dropped when the call returns. This behaves like
// calling on a full copy of the caller's scope without paying for it.
type Environment struct {
	store map[string]Value
	outer *Environment
}

func newEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// NewEnvironment returns an empty environment, without even #t and #f.
func NewEnvironment() *Environment { return newEnvironment(nil) }

// NewBaseEnvironment returns an environment seeded with the boolean
// literals and the builtin special forms.
func NewBaseEnvironment() *Environment {
	env := newEnvironment(nil)
	env.Define("#t", TRUE)
	env.Define("#f", FALSE)
	for _, b := range builtins() {
		env.Define(b.name, b)
	}
	return env
}

// Define binds the given name to the given value, overwriting any
// binding of that name in this frame.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get gets the given name from the environment, traversing
// the outer environments if it is not found.
func (e *Environment) Get(name string) (Value, bool) {
	for ; e != nil; e = e.outer {
		if v, ok := e.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Clone flattens e and its outer frames into a new, independent
// environment.
func (e *Environment) Clone() *Environment {
	clone := newEnvironment(nil)
	e.each(func(name string, v Value) {
		clone.store[name] = v
	})
	return clone
}

// Names returns every visible name, sorted.
func (e *Environment) Names() []string {
	names := []string{}
	e.each(func(name string, _ Value) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

// each calls f once per visible name, with the innermost binding.
func (e *Environment) each(f func(string, Value)) {
	seen := map[string]bool{}
	for ; e != nil; e = e.outer {
		for name, v := range e.store {
			if seen[name] {
				continue
			}
			seen[name] = true
			f(name, v)
		}
	}
}

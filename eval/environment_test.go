package eval

import (
	"reflect"
	"testing"
)

func TestBaseEnvironment(t *testing.T) {
	env := NewBaseEnvironment()
	expected := []string{"#f", "#t", "define", "eq?", "if", "not"}
	if got := env.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected=%q, got=%q", expected, got)
	}
	for _, name := range []string{"define", "eq?", "if", "not"} {
		v, _ := env.Get(name)
		b, ok := v.(*Builtin)
		if !ok || b.Name() != name {
			t.Errorf("expected %s to be the builtin %s, got=%#v", name, name, v)
		}
	}
	if len(NewEnvironment().Names()) != 0 {
		t.Error("expected an empty environment")
	}
}

func TestEnvironmentFrames(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Int(1))
	outer.Define("y", Int(2))
	inner := newEnvironment(outer)
	inner.Define("x", Int(10))
	inner.Define("z", Int(30))

	tests := []struct {
		env      *Environment
		name     string
		expected Value
		found    bool
	}{
		{inner, "x", Int(10), true},
		{inner, "y", Int(2), true},
		{inner, "z", Int(30), true},
		{outer, "x", Int(1), true},
		{outer, "z", nil, false},
		{inner, "w", nil, false},
	}
	for i, test := range tests {
		v, ok := test.env.Get(test.name)
		if ok != test.found || !Equal(v, test.expected) {
			t.Errorf("tests[%d] (%s): expected=(%q, %v), got=(%q, %v)",
				i, test.name, Inspect(test.expected), test.found, Inspect(v), ok)
		}
	}
	if got := inner.Names(); !reflect.DeepEqual(got, []string{"x", "y", "z"}) {
		t.Errorf("unexpected names %q", got)
	}
}

func TestEnvironmentClone(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Int(1))
	inner := newEnvironment(outer)
	inner.Define("x", Int(2))

	clone := inner.Clone()
	if clone.outer != nil {
		t.Error("expected a flat clone")
	}
	if v, _ := clone.Get("x"); !Equal(v, Int(2)) {
		t.Errorf("expected the innermost x, got=%q", Inspect(v))
	}
	clone.Define("x", Int(3))
	clone.Define("y", Int(4))
	if v, _ := inner.Get("x"); !Equal(v, Int(2)) {
		t.Errorf("clone leaked into original: x=%q", Inspect(v))
	}
	if _, ok := inner.Get("y"); ok {
		t.Error("clone leaked y into original")
	}
}

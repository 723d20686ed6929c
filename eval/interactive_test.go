package eval

import (
	"lisp/parser"
	"reflect"
	"testing"
)

func TestInteractiveContext(t *testing.T) {
	ic := NewInteractiveContext()
	steps := []struct {
		input    string
		expected string
		fails    bool
	}{
		{"(define x (if #t 1))", "", false},
		{"x", "1", false},
		{"(define (add x y) (if (eq? x y) x y))", "", false},
		{"(add 3 3)", "3", false},
		{"(add 3 4)", "4", false},
		{"(1 2 3)) 1", "", true},
		{"(add 1)", "", true},
		{"(undefined)", "", true},
		// bindings survive the errors above.
		{"(add x 2)", "2", false},
		{"add", "#<function (x y) (if (eq? x y) x y)>", false},
		{"eq?", "eq?", false},
		{"1.25", "1.25", false},
		{"(not x)", "#f", false},
	}
	for i, step := range steps {
		v, err := ic.Run(step.input)
		if (err != nil) != step.fails {
			t.Errorf("steps[%d] (%q): expected failure=%v, got err=%v", i, step.input, step.fails, err)
			continue
		}
		if got := ic.Inspect(v); got != step.expected {
			t.Errorf("steps[%d] (%q): expected=%q, got=%q", i, step.input, step.expected, got)
		}
	}
}

func TestInteractiveErrors(t *testing.T) {
	ic := NewInteractiveContext()
	_, err := ic.Run("(1 2 3)) 1")
	if _, ok := err.(*parser.SyntaxError); !ok {
		t.Errorf("expected *parser.SyntaxError, got=%T (%v)", err, err)
	}
	_, err = ic.Run("(if)")
	if !IsKind(err, ARITY) {
		t.Errorf("expected ARITY, got=%v", err)
	}
	ic.Context().MaxDepth = 50
	if _, err := ic.Run("(define (f) (f)) (f)"); !IsKind(err, STACK_OVERFLOW) {
		t.Errorf("expected STACK_OVERFLOW, got=%v", err)
	}
}

func TestInteractiveComplete(t *testing.T) {
	ic := NewInteractiveContext()
	if _, err := ic.Run("(define equal 1) (define (even? x) x)"); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		prefix   string
		expected []string
	}{
		{"e", []string{"eq?", "equal", "even?"}},
		{"eq", []string{"eq?", "equal"}},
		{"#", []string{"#f", "#t"}},
		{"zzz", []string{}},
	}
	for i, test := range tests {
		if got := ic.Complete(test.prefix); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("tests[%d] (%q): expected=%q, got=%q", i, test.prefix, test.expected, got)
		}
	}
}

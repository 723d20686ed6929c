package eval

import "lisp/parser"

//go:generate stringer -type=ValueType

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_INT
	VT_FLOAT
	VT_BOOLEAN
	VT_BUILTIN
	VT_FUNCTION
)

// Value is anything an evaluation can produce. The absence of a value
// ("nothing", e.g. the result of define or of an empty group) is a nil
// Value, never a distinguished object.
type Value interface {
	Type() ValueType
}

// ==========
// Primitives
// ==========

type Int int32
type Float float64
type Boolean bool

// ==========
// Callables
// ==========

// builtinFunc receives its arguments unevaluated, so that each
// builtin decides what to evaluate and in which order.
type builtinFunc func(ctx *Context, args []parser.Node) (Value, error)

// Builtin represents a built-in special form. Two builtins are equal
// iff their names are.
type Builtin struct {
	name string
	call builtinFunc
}

func newBuiltin(name string, call builtinFunc) *Builtin {
	return &Builtin{name: name, call: call}
}

func (v *Builtin) Name() string { return v.name }

// Function is a user-defined function. It captures no environment:
// the body is resolved against whatever environment it is called from.
type Function struct {
	Params []string
	Body   parser.Node
}

func newFunction(params []string, body parser.Node) *Function {
	return &Function{Params: params, Body: body}
}

func (v Int) Type() ValueType       { return VT_INT }
func (v Float) Type() ValueType     { return VT_FLOAT }
func (v Boolean) Type() ValueType   { return VT_BOOLEAN }
func (v *Builtin) Type() ValueType  { return VT_BUILTIN }
func (v *Function) Type() ValueType { return VT_FUNCTION }

// ==========
// Singletons
// ==========

var (
	TRUE  = Boolean(true)
	FALSE = Boolean(false)
)

// isPrimitive reports whether v is a literal that cannot be called.
func isPrimitive(v Value) bool {
	switch v.Type() {
	case VT_INT, VT_FLOAT, VT_BOOLEAN:
		return true
	}
	return false
}

// isTruthy: everything except #f is true, including nothing.
func isTruthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// Equal compares two (possibly absent) values. Nothing equals only
// nothing; builtins compare by name; functions by params and body;
// primitives by kind and value, so Int(1) != Float(1).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Int, Float, Boolean:
		return a == b
	case *Builtin:
		b, ok := b.(*Builtin)
		return ok && a.name == b.name
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return parser.Equal(a.Body, b.Body)
	}
	return false
}

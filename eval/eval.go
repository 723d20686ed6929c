package eval

// Implements the actual evaluator for the language.

import (
	"errors"
	"fmt"
	"lisp/parser"
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds how deeply evaluations may nest before failing
// with STACK_OVERFLOW.
const DefaultMaxDepth = 10000

type Context struct {
	// the current environment we're executing in. function calls swap
	// it for a fresh frame and restore it on return.
	env *Environment
	// how many Eval calls are currently on the stack.
	depth int
	// MaxDepth is the deepest nesting allowed; 0 means unlimited.
	MaxDepth int
}

func NewContext() *Context {
	return NewContextWithEnv(NewBaseEnvironment())
}

func NewContextWithEnv(env *Environment) *Context {
	return &Context{
		env:      env,
		MaxDepth: DefaultMaxDepth,
	}
}

// Env returns the environment top-level expressions are evaluated in.
func (ctx *Context) Env() *Environment { return ctx.env }

// Fork returns a new context with a flattened copy of the current
// environment. Definitions made in either one are invisible to the
// other.
func (ctx *Context) Fork() *Context {
	fork := NewContextWithEnv(ctx.env.Clone())
	fork.MaxDepth = ctx.MaxDepth
	return fork
}

func (ctx *Context) pushEnv() { ctx.env = newEnvironment(ctx.env) }
func (ctx *Context) popEnv()  { ctx.env = ctx.env.outer }

// EvalProgram evaluates each top-level node in order against the same
// environment and returns the result of the last one. Earlier results
// are discarded; they only matter for their side effects.
func (ctx *Context) EvalProgram(nodes []parser.Node) (Value, error) {
	var rv Value
	for _, node := range nodes {
		v, err := ctx.Eval(node)
		if err != nil {
			return nil, err
		}
		rv = v
	}
	return rv, nil
}

// Eval evaluates a single node. A nil Value with a nil error means the
// expression produced nothing.
func (ctx *Context) Eval(node parser.Node) (Value, error) {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.MaxDepth > 0 && ctx.depth > ctx.MaxDepth {
		return nil, newError(STACK_OVERFLOW, "maximum evaluation depth %d exceeded", ctx.MaxDepth)
	}
	switch node := node.(type) {
	case *parser.Leaf:
		return ctx.evalLeaf(node)
	case *parser.Group:
		return ctx.evalGroup(node)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

// ======
// Leaves
// ======

// evalLeaf resolves an atom: an int32 literal, else a float64 literal,
// else whatever the name is bound to.
func (ctx *Context) evalLeaf(node *parser.Leaf) (Value, error) {
	if v, ok := parseLiteral(node.Atom); ok {
		return v, nil
	}
	if v, ok := ctx.env.Get(node.Atom); ok {
		return v, nil
	}
	return nil, newError(UNDEFINED_REFERENCE, "reference to undefined name %s", node.Atom)
}

func parseLiteral(atom string) (Value, bool) {
	if i, err := strconv.ParseInt(atom, 10, 32); err == nil {
		return Int(i), true
	}
	// ParseFloat also takes hex floats and digit separators, which are
	// not part of the language.
	if strings.ContainsAny(atom, "xX_") {
		return nil, false
	}
	// out of range values come back as +-inf, which is what we want.
	if f, err := strconv.ParseFloat(atom, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return Float(f), true
	}
	return nil, false
}

// ======
// Groups
// ======

func (ctx *Context) evalGroup(node *parser.Group) (Value, error) {
	if len(node.Children) == 0 {
		return nil, nil
	}
	callee, err := ctx.Eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	args := node.Children[1:]
	switch callee := callee.(type) {
	case nil:
		return nil, newError(MISSING_VALUE, "operator %s evaluated to nothing", node.Children[0])
	case *Builtin:
		return callee.call(ctx, args)
	case *Function:
		return ctx.callFunction(callee, args)
	}
	if isPrimitive(callee) {
		return nil, newError(CALL_ON_PRIMITIVE, "cannot call %s as a function", Inspect(callee))
	}
	panic(fmt.Sprintf("unhandled callee %#+v", callee))
}

// callFunction evaluates args in the caller's environment, then runs
// the body in a new frame where each parameter is bound to its
// argument. The caller's environment is restored even on error.
func (ctx *Context) callFunction(fn *Function, args []parser.Node) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, newError(ARITY,
			"function %s expects %d argument(s), got=%d",
			Inspect(fn), len(fn.Params), len(args))
	}
	values := make([]Value, len(args))
	for i, arg := range args {
		v, err := ctx.Eval(arg)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, newError(MISSING_VALUE, "argument %s for parameter %s evaluated to nothing", arg, fn.Params[i])
		}
		values[i] = v
	}
	ctx.pushEnv()
	defer ctx.popEnv()
	for i, param := range fn.Params {
		ctx.env.Define(param, values[i])
	}
	return ctx.Eval(fn.Body)
}

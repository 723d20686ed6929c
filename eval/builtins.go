package eval

import "lisp/parser"

// =================
// Builtin functions
// =================
//
// Every builtin receives its arguments as unevaluated nodes and
// evaluates them itself, in the current environment: this is what lets
// `if` skip the branch it does not take and `define` treat its first
// argument as a name.

func builtins() []*Builtin {
	return []*Builtin{
		newBuiltin("define", bi_define),
		newBuiltin("if", bi_if),
		newBuiltin("eq?", bi_eq),
		newBuiltin("not", bi_not),
	}
}

// ------
// define
// ------
//
//   (define name expr)           binds name to the value of expr
//   (define (name params...) expr) binds name to a function
func bi_define(ctx *Context, args []parser.Node) (Value, error) {
	if err := expectNArgs("define", args, 2); err != nil {
		return nil, err
	}
	switch subject := args[0].(type) {
	case *parser.Leaf:
		value, err := ctx.Eval(args[1])
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, newError(MISSING_VALUE, "right hand side of %s evaluated to nothing", subject.Atom)
		}
		ctx.env.Define(subject.Atom, value)
		return nil, nil
	case *parser.Group:
		if len(subject.Children) == 0 {
			return nil, newError(SYNTAX, "define: missing function name")
		}
		name, ok := subject.Children[0].(*parser.Leaf)
		if !ok {
			return nil, newError(SYNTAX, "define: function name must be a name, got=%s", subject.Children[0])
		}
		params := make([]string, 0, len(subject.Children)-1)
		for _, p := range subject.Children[1:] {
			leaf, ok := p.(*parser.Leaf)
			if !ok {
				return nil, newError(INVALID_PARAMETER, "parameters of %s must be names, got=%s", name.Atom, p)
			}
			params = append(params, leaf.Atom)
		}
		ctx.env.Define(name.Atom, newFunction(params, args[1]))
		return nil, nil
	}
	return nil, newError(SYNTAX, "define: cannot bind to %s", args[0])
}

// --
// if
// --
//
//   (if cond then)
//   (if cond then else)
func bi_if(ctx *Context, args []parser.Node) (Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, newError(ARITY, "if: expected 2 or 3 argument(s), got=%d", len(args))
	}
	cond, err := ctx.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return ctx.Eval(args[1])
	}
	if len(args) == 3 {
		return ctx.Eval(args[2])
	}
	return nil, nil
}

// ---
// eq?
// ---
func bi_eq(ctx *Context, args []parser.Node) (Value, error) {
	if err := expectNArgs("eq?", args, 2); err != nil {
		return nil, err
	}
	left, err := ctx.Eval(args[0])
	if err != nil {
		return nil, err
	}
	right, err := ctx.Eval(args[1])
	if err != nil {
		return nil, err
	}
	return Boolean(Equal(left, right)), nil
}

// ---
// not
// ---
func bi_not(ctx *Context, args []parser.Node) (Value, error) {
	if err := expectNArgs("not", args, 1); err != nil {
		return nil, err
	}
	v, err := ctx.Eval(args[0])
	if err != nil {
		return nil, err
	}
	return Boolean(v == FALSE), nil
}

// =========
// Utilities
// =========

func expectNArgs(name string, args []parser.Node, n int) error {
	if len(args) == n {
		return nil
	}
	return newError(ARITY, "%s: expected %d argument(s), got=%d", name, n, len(args))
}

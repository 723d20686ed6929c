package eval

import (
	"lisp/lexer"
	"lisp/parser"
	"strings"
)

// InteractiveContext evaluates one REPL entry at a time against an
// environment that persists across entries. An error aborts the entry
// it came from, but whatever was defined before stays defined.
type InteractiveContext struct {
	ctx *Context
}

func NewInteractiveContext() *InteractiveContext {
	return &InteractiveContext{NewContext()}
}

// Context exposes the underlying evaluation context, e.g. to tune
// MaxDepth.
func (ic *InteractiveContext) Context() *Context { return ic.ctx }

func (ic *InteractiveContext) Inspect(v Value) string { return Inspect(v) }

// Run tokenizes, parses and evaluates input. The returned error is a
// *parser.SyntaxError or an *Error.
func (ic *InteractiveContext) Run(input string) (Value, error) {
	nodes, err := parser.Parse(lexer.Tokenize(input))
	if err != nil {
		return nil, err
	}
	return ic.ctx.EvalProgram(nodes)
}

// Complete lists the bound names starting with prefix.
func (ic *InteractiveContext) Complete(prefix string) []string {
	matches := []string{}
	for _, name := range ic.ctx.env.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

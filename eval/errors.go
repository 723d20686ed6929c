package eval

import (
	"errors"
	"fmt"
)

//go:generate stringer -type=ErrorKind

type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	SYNTAX              // malformed special form, e.g. (define () 1)
	ARITY               // wrong number of arguments
	UNDEFINED_REFERENCE // atom is neither a literal nor bound
	CALL_ON_PRIMITIVE   // a literal in operator position
	INVALID_PARAMETER   // non-atom in a parameter list
	MISSING_VALUE       // an expression that must produce a value produced nothing
	STACK_OVERFLOW      // evaluation nested deeper than Context.MaxDepth
)

// Error aborts the evaluation of the current top-level expression.
// There is no way to catch it from inside the language.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, s string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(s, args...),
	}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

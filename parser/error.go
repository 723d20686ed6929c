package parser

import (
	"errors"
	"fmt"
)

// SyntaxError is returned when the parens in the input do not match.
// Pos is the index of the offending token.
type SyntaxError struct {
	Pos     int
	Message string
	// Unterminated is set when the input ran out before a '(' was
	// closed; more input could still make it valid.
	Unterminated bool
}

func (e *SyntaxError) Error() string { return e.String() }
func (e *SyntaxError) String() string {
	return fmt.Sprintf("syntax error at token %d: %s", e.Pos, e.Message)
}

func (p *Parser) error(pos int, unterminated bool, s string, args ...interface{}) error {
	return &SyntaxError{
		Pos:          pos,
		Message:      fmt.Sprintf(s, args...),
		Unterminated: unterminated,
	}
}

// IsIncomplete reports whether err only says that some '(' was never
// closed, as opposed to the input being malformed.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Unterminated
}

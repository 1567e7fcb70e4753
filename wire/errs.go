package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax wraps malformed JSON input.
	ErrSyntax = errors.New("syntax error")
)

// TypeError reports a wire value whose type does not match the declared
// shape it is being read as.
type TypeError struct {
	Want Type
	Got  Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// NumberError reports a numeric lexeme outside the declared representation.
type NumberError struct {
	Lexeme string
	Want   string
	Err    error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("number %q does not fit %s", e.Lexeme, e.Want)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

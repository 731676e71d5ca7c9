package grammar

import (
	"fmt"

	"github.com/juga0/useridaddr/token"
)

// ParseError is the syntactic error class from spec §7: it carries the
// expected token set, the actual token (or EOF), and a byte offset.
// Strict entry points propagate it verbatim.
type ParseError struct {
	Offset   int
	Expected []token.Kind
	Got      token.Kind
	Message  string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("[offset %d]: %s (got %s)", e.Offset, e.Message, e.Got)
	}

	return fmt.Sprintf("[offset %d]: %s (expected %v, got %s)", e.Offset, e.Message, e.Expected, e.Got)
}

// IsEOF reports whether the parser ran out of input while expecting more.
func (e *ParseError) IsEOF() bool {
	return e.Got == token.EOF
}

// ErrInputTooLong is returned when WithMaxInputLength rejects the input
// before parsing begins.
type ErrInputTooLong struct {
	Length, Max int
}

func (e *ErrInputTooLong) Error() string {
	return fmt.Sprintf("input length %d exceeds maximum of %d", e.Length, e.Max)
}

// ErrCommentTooDeep is returned when nested comments exceed
// WithMaxCommentDepth.
type ErrCommentTooDeep struct {
	Offset int
	Max    int
}

func (e *ErrCommentTooDeep) Error() string {
	return fmt.Sprintf("[offset %d]: comment nesting exceeds maximum depth %d", e.Offset, e.Max)
}

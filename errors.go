package kansuji

import (
	"errors"
	"fmt"
)

// Errors reported by the decoder and by numeric conversions.
// Use [errors.Is] to match them; decoding errors are wrapped in [*ParseError].
var (
	// Decoding errors
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrUnitOutOfOrder   = errors.New("unit out of order")
	ErrDuplicateUnit    = errors.New("duplicate unit")
	ErrMalformedGroup   = errors.New("malformed group")
	ErrOverflow         = errors.New("overflow")

	// Conversion errors
	ErrOutOfRange           = errors.New("out of range")
	ErrNonIntegerConversion = errors.New("non-integer conversion")
)

// ParseError records a failed decoding of a kansuji string.
type ParseError struct {
	Input string // the string being decoded
	Pos   int    // rune index of the offending character, or -1
	Char  rune   // offending character, valid if Pos >= 0
	Err   error  // one of the decoding errors above
}

func newParseError(input string, tok token, err error) *ParseError {
	return &ParseError{Input: input, Pos: tok.pos, Char: tok.char, Err: err}
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parsing %q: %v %q at position %d", e.Input, e.Err, e.Char, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

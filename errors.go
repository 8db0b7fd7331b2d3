package overpunch

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/overpunch/decimal"
	"github.com/calebcase/overpunch/encoding"
	"github.com/calebcase/overpunch/picture"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("overpunch")

// ErrEmptyField is returned when the raw field has zero length.
var ErrEmptyField = Error.New("field is empty")

// ParseError is returned when the character at Index cannot be decoded. Index
// counts characters, not bytes, starting at zero.
type ParseError struct {
	Char  rune
	Index int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: invalid character %q at index %d", e.Char, e.Index)
}

// OverflowError is returned when a magnitude exceeds the signed 64-bit range.
// Value is the input that overflowed.
type OverflowError struct {
	Value string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value overflowed during conversion: %s", e.Value)
}

type (
	// ScaleError is returned when a scale is outside 0 through
	// decimal.MaxScale.
	ScaleError = decimal.ScaleError

	// FormatError is returned when a picture string is not recognized.
	FormatError = picture.FormatError

	// UnsupportedCharacterError is returned by encodings for characters
	// outside their table.
	UnsupportedCharacterError = encoding.UnsupportedCharacterError
)

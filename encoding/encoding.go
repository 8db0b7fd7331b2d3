package encoding

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("encoding")

// UnsupportedCharacterError is returned when a character has no entry in an
// encoding's table. For Encode the offending digit is carried as a rune.
type UnsupportedCharacterError struct {
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("character %q is not supported by the encoding", e.Char)
}

// Unsupported returns an UnsupportedCharacterError for c wrapped in the
// package error class.
func Unsupported(c rune) error {
	return Error.Wrap(&UnsupportedCharacterError{Char: c})
}

// Sign is the sign of a value.
type Sign uint8

// Signs
const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}

	return fmt.Sprintf("Sign(%d)", uint8(s))
}

// Encoding maps a digit and sign pair to and from a single character.
type Encoding interface {
	// Encode returns the character for digit (0-9) with the given sign.
	Encode(digit uint8, sign Sign) (c rune, err error)

	// Decode returns the digit and sign carried by c.
	Decode(c rune) (digit uint8, sign Sign, err error)

	// DecodeDigit returns the digit for a plain, unsigned digit character.
	DecodeDigit(c rune) (digit uint8, err error)
}

var builtin = map[string]Encoding{
	"standard": Standard{},
	"ebcdic":   Standard{},
}

// Lookup returns the built-in encoding registered under name. Names are case
// insensitive.
func Lookup(name string) (enc Encoding, ok bool) {
	enc, ok = builtin[strings.ToLower(strings.TrimSpace(name))]

	return enc, ok
}

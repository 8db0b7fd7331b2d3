// Package picture derives the scale of a numeric field from a COBOL style
// picture clause.
//
// Only three features of the picture grammar are recognized:
//
//  sign      ::= 's'
//  count     ::= '9(' digits ')' | '9' { '9' }
//  picture   ::= [sign] count [ ('v' | 'V') [count] ]
//
// The parse is shallow. The fractional group after the decimal-point marker
// is validated and counted. Without a marker only the leading character is
// checked, and it must be a lowercase 's' or a '9':
//
//  | Picture      | Scale |
//  |--------------|-------|
//  | s9(7)v999    | 3     |
//  | 9(7)v9(2)    | 2     |
//  | s9v          | 0     |
//  | s9(3)        | 0     |
//  | 999          | 0     |
//  | S9(3)        | error |
//  | s9(1)v9a     | error |
//  | xxx          | error |
//  |--------------|-------|
package picture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("picture")

// FormatError is returned when a picture string does not have a recognized
// shape.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid field format string provided: %s", e.Format)
}

func invalid(format string) error {
	return Error.Wrap(&FormatError{Format: format})
}

// Scale returns the number of fractional digits described by format.
func Scale(format string) (scale int, err error) {
	pos := strings.IndexAny(format, "vV")
	if pos < 0 {
		if strings.HasPrefix(format, "s") || strings.HasPrefix(format, "9") {
			return 0, nil
		}

		return 0, invalid(format)
	}

	fraction := format[pos+1:]

	switch {
	case fraction == "":
		return 0, nil
	case strings.HasPrefix(fraction, "9(") && strings.HasSuffix(fraction, ")"):
		count := fraction[2 : len(fraction)-1]
		if !digits(count) {
			return 0, invalid(format)
		}

		scale, err = strconv.Atoi(count)
		if err != nil {
			return 0, invalid(format)
		}

		return scale, nil
	case strings.Trim(fraction, "9") == "":
		return len(fraction), nil
	}

	return 0, invalid(format)
}

func digits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

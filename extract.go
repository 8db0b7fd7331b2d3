package overpunch

import (
	"errors"
	"unicode/utf8"

	"github.com/calebcase/oops"

	"github.com/calebcase/overpunch/decimal"
	"github.com/calebcase/overpunch/encoding"
	"github.com/calebcase/overpunch/integer"
)

// ExtractWithEncoding decodes raw into a decimal with the given scale using
// enc. A nil enc uses encoding.Standard.
func ExtractWithEncoding(raw string, scale int, enc encoding.Encoding) (d decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	if raw == "" {
		return decimal.Decimal{}, ErrEmptyField
	}

	err = decimal.CheckScale(scale)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if enc == nil {
		enc = encoding.Standard{}
	}

	var (
		acc   int64
		sign  = encoding.Positive
		index int
		last  = utf8.RuneCountInString(raw) - 1
	)

	for _, c := range raw {
		var digit uint8

		if index < last {
			digit, err = enc.DecodeDigit(c)
			if err != nil {
				return decimal.Decimal{}, oops.Trace(&ParseError{Char: c, Index: index})
			}
		} else {
			digit, sign, err = enc.Decode(c)
			if err != nil {
				var uerr *encoding.UnsupportedCharacterError
				if errors.As(err, &uerr) {
					return decimal.Decimal{}, oops.Trace(&ParseError{Char: c, Index: index})
				}

				return decimal.Decimal{}, err
			}
		}

		acc, err = integer.Accumulate(acc, digit)
		if err != nil {
			return decimal.Decimal{}, oops.Trace(&OverflowError{Value: raw})
		}

		index++
	}

	return decimal.Decimal{
		Value:    uint64(acc),
		Scale:    scale,
		Negative: sign == encoding.Negative,
	}, nil
}

package overpunch

import (
	"errors"
	"math"
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/overpunch/decimal"
	"github.com/calebcase/overpunch/encoding"
	"github.com/calebcase/overpunch/integer"
)

// FormatWithEncoding encodes d as a field with the given scale using enc. A
// nil enc uses encoding.Standard.
//
// Values with more fractional digits than scale are rounded half to even.
func FormatWithEncoding(d decimal.Decimal, scale int, enc encoding.Encoding) (s string, err error) {
	defer Error.WrapP(&err)

	err = decimal.CheckScale(scale)
	if err != nil {
		return "", err
	}

	if enc == nil {
		enc = encoding.Standard{}
	}

	sign := encoding.Positive
	if d.Negative {
		sign = encoding.Negative
	}

	if d.IsZero() {
		c, err := enc.Encode(0, sign)
		if err != nil {
			return "", err
		}

		sb := &strings.Builder{}
		sb.WriteString(strings.Repeat("0", scale))
		sb.WriteRune(c)

		return sb.String(), nil
	}

	scaled, err := d.Abs().Rescale(scale)
	if err != nil {
		var serr *ScaleError
		if errors.As(err, &serr) {
			return "", err
		}

		return "", oops.Trace(&OverflowError{Value: d.String()})
	}

	if scaled.Value > math.MaxInt64 {
		return "", oops.Trace(&OverflowError{Value: d.String()})
	}

	digits := integer.Digits(scaled.Value, scale+1)
	last := digits[len(digits)-1] - '0'

	c, err := enc.Encode(last, sign)
	if err != nil {
		return "", err
	}

	sb := &strings.Builder{}
	sb.Write(digits[:len(digits)-1])
	sb.WriteRune(c)

	return sb.String(), nil
}

package encoding

const (
	positive = "{ABCDEFGHI"
	negative = "}JKLMNOPQR"
)

// Standard is the common overpunch table used by EBCDIC systems and their
// ASCII exports.
type Standard struct{}

var _ Encoding = Standard{}

// Encode implements Encoding.
func (Standard) Encode(digit uint8, sign Sign) (c rune, err error) {
	if digit > 9 {
		return 0, Unsupported(rune(digit))
	}

	switch sign {
	case Positive:
		return rune(positive[digit]), nil
	case Negative:
		return rune(negative[digit]), nil
	}

	return 0, Error.New("invalid sign: %d", uint8(sign))
}

// Decode implements Encoding.
func (Standard) Decode(c rune) (digit uint8, sign Sign, err error) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), Positive, nil
	case c == '{':
		return 0, Positive, nil
	case c == '}':
		return 0, Negative, nil
	case c >= 'A' && c <= 'I':
		return uint8(c-'A') + 1, Positive, nil
	case c >= 'J' && c <= 'R':
		return uint8(c-'J') + 1, Negative, nil
	}

	return 0, Positive, Unsupported(c)
}

// DecodeDigit implements Encoding.
func (Standard) DecodeDigit(c rune) (digit uint8, err error) {
	if c < '0' || c > '9' {
		return 0, Unsupported(c)
	}

	return uint8(c - '0'), nil
}

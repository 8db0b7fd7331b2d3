package decimal

import (
	"fmt"

	gv "github.com/govalues/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/overpunch/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrSyntax is returned when text does not represent a decimal.
var ErrSyntax = Error.New("invalid syntax")

// MaxScale is the largest supported scale.
const MaxScale = 28

// ScaleError is returned when a scale is outside 0 through MaxScale.
type ScaleError struct {
	Scale int
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("scale (%d) is too large or invalid for internal representation", e.Scale)
}

// CheckScale returns a ScaleError if scale is out of range.
func CheckScale(scale int) error {
	if scale < 0 || scale > MaxScale {
		return Error.Wrap(&ScaleError{Scale: scale})
	}

	return nil
}

// Decimal is a fixed point base 10 number.
type Decimal struct {
	Value    uint64
	Scale    int
	Negative bool
}

// New returns value / 10^scale.
//
// New panics if scale is out of range.
func New(value int64, scale int) Decimal {
	if err := CheckScale(scale); err != nil {
		panic(fmt.Sprintf("New(%d, %d) failed: %v", value, scale, err))
	}

	d := Decimal{
		Value: uint64(value),
		Scale: scale,
	}

	if value < 0 {
		d.Value = uint64(-(value + 1)) + 1
		d.Negative = true
	}

	return d
}

// NegativeZero returns a zero with the sign bit set.
func NegativeZero(scale int) Decimal {
	return Decimal{Scale: scale, Negative: true}
}

// Parse converts text of the form [+|-]digits[.digits] to a decimal. The
// scale is the number of fractional digits given, and the sign of a zero is
// preserved.
func Parse(s string) (d Decimal, err error) {
	defer Error.WrapP(&err)

	pos := 0

	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		d.Negative = s[pos] == '-'
		pos++
	}

	var (
		digits int
		point  bool
	)

	for ; pos < len(s); pos++ {
		c := s[pos]

		switch {
		case c == '.' && !point:
			point = true
		case c >= '0' && c <= '9':
			v, ok := integer.Mul(d.Value, 10)
			if ok {
				v += uint64(c - '0')
				ok = v >= uint64(c-'0')
			}

			if !ok {
				return Decimal{}, fmt.Errorf("%q: %w", s, integer.ErrOverflow)
			}

			d.Value = v
			digits++

			if point {
				d.Scale++
			}
		default:
			return Decimal{}, ErrSyntax
		}
	}

	if digits == 0 {
		return Decimal{}, ErrSyntax
	}

	err = CheckScale(d.Scale)
	if err != nil {
		return Decimal{}, err
	}

	return d, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return d
}

// String returns the decimal as text. The scale is kept, so 12.30 renders
// with two fractional digits, and negative zero renders with a leading '-'.
func (d Decimal) String() string {
	scale := d.Scale
	if scale < 0 {
		scale = 0
	}

	digits := integer.Digits(d.Value, scale+1)

	buf := make([]byte, 0, len(digits)+2)
	if d.Negative {
		buf = append(buf, '-')
	}

	whole := len(digits) - scale
	buf = append(buf, digits[:whole]...)

	if scale > 0 {
		buf = append(buf, '.')
		buf = append(buf, digits[whole:]...)
	}

	return string(buf)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	*d, err = Parse(string(text))

	return err
}

// IsZero returns true if the magnitude is zero, regardless of sign.
func (d Decimal) IsZero() bool {
	return d.Value == 0
}

// IsNeg returns true if the sign bit is set. This includes negative zero.
func (d Decimal) IsNeg() bool {
	return d.Negative
}

// Sign returns -1, 0 or +1. Both zeros return 0.
func (d Decimal) Sign() int {
	switch {
	case d.Value == 0:
		return 0
	case d.Negative:
		return -1
	}

	return 1
}

// Abs returns d with the sign bit cleared.
func (d Decimal) Abs() Decimal {
	d.Negative = false

	return d
}

// Neg returns d with the sign bit flipped.
func (d Decimal) Neg() Decimal {
	d.Negative = !d.Negative

	return d
}

// Rescale returns d with exactly scale fractional digits. Reducing the scale
// rounds half to even. Increasing it fails if the magnitude overflows.
func (d Decimal) Rescale(scale int) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	err = CheckScale(scale)
	if err != nil {
		return Decimal{}, err
	}

	err = CheckScale(d.Scale)
	if err != nil {
		return Decimal{}, err
	}

	switch {
	case scale == d.Scale:
		return d, nil
	case scale > d.Scale:
		if d.Value == 0 {
			d.Scale = scale

			return d, nil
		}

		var v uint64

		p, ok := integer.Pow10(scale - d.Scale)
		if ok {
			v, ok = integer.Mul(d.Value, p)
		}

		if !ok {
			return Decimal{}, fmt.Errorf("rescale %s to %d: %w", d, scale, integer.ErrOverflow)
		}

		d.Value = v
	default:
		d.Value = shiftEven(d.Value, d.Scale-scale)
	}

	d.Scale = scale

	return d, nil
}

// shiftEven divides v by 10^n rounding half to even.
func shiftEven(v uint64, n int) uint64 {
	p, ok := integer.Pow10(n)
	if !ok {
		// v < 10^20 / 2, so everything rounds to zero.
		return 0
	}

	q, r := v/p, v%p
	half := p / 2

	if r > half || (r == half && q%2 == 1) {
		q++
	}

	return q
}

// Equal returns true if d and e are numerically equal. Scale is ignored and
// both zeros are equal.
func (d Decimal) Equal(e Decimal) bool {
	if d.IsZero() || e.IsZero() {
		return d.IsZero() && e.IsZero()
	}

	if d.Negative != e.Negative {
		return false
	}

	scale := max(d.Scale, e.Scale)

	a, err := d.Rescale(scale)
	if err != nil {
		return false
	}

	b, err := e.Rescale(scale)
	if err != nil {
		return false
	}

	return a.Value == b.Value
}

// Identical returns true if d and e have the same magnitude, scale and sign
// bit.
func (d Decimal) Identical(e Decimal) bool {
	return d == e
}

// FromGovalues converts a github.com/govalues/decimal value.
func FromGovalues(d gv.Decimal) Decimal {
	return Decimal{
		Value:    d.Coef(),
		Scale:    d.Scale(),
		Negative: d.IsNeg(),
	}
}

// Govalues converts d to a github.com/govalues/decimal value. That type has
// no signed zero, so negative zero converts to zero.
func (d Decimal) Govalues() (gv.Decimal, error) {
	v, err := gv.Parse(d.String())
	if err != nil {
		return gv.Decimal{}, Error.Wrap(err)
	}

	return v, nil
}

// Package integer provides overflow checked base 10 arithmetic on unsigned
// magnitudes.
//
// Fixed point values are kept as a magnitude plus a separate sign bit, so
// every helper here works on the magnitude alone and reports overflow instead
// of wrapping.
package integer

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// ErrOverflow is returned when a result does not fit its representation.
var ErrOverflow = Error.New("overflow")

// MaxPow10 is the largest n for which 10^n fits a uint64.
const MaxPow10 = 19

var pow10 = [MaxPow10 + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n. The result is false if n is negative or 10^n does not
// fit a uint64.
func Pow10(n int) (uint64, bool) {
	if n < 0 || n > MaxPow10 {
		return 0, false
	}

	return pow10[n], true
}

// Mul returns a*b. The result is false on overflow.
func Mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}

	return lo, true
}

// MulAdd returns acc*10 + digit. The result is false if acc is negative,
// digit is not a decimal digit, or the result exceeds math.MaxInt64.
func MulAdd(acc int64, digit uint8) (int64, bool) {
	if acc < 0 || digit > 9 {
		return 0, false
	}

	if acc > (math.MaxInt64-int64(digit))/10 {
		return 0, false
	}

	return acc*10 + int64(digit), true
}

// Accumulate folds decimal digits onto the magnitude acc, most significant
// digit first. It returns ErrOverflow as soon as the magnitude leaves int64.
func Accumulate(acc int64, digits ...uint8) (int64, error) {
	for _, d := range digits {
		var ok bool

		acc, ok = MulAdd(acc, d)
		if !ok {
			return 0, ErrOverflow
		}
	}

	return acc, nil
}

// Digits returns the base 10 digits of v as ASCII, left padded with '0' to at
// least width digits.
func Digits(v uint64, width int) []byte {
	var buf [20]byte

	digits := strconv.AppendUint(buf[:0], v, 10)
	if len(digits) >= width {
		return digits
	}

	out := make([]byte, width)

	pad := width - len(digits)
	for i := 0; i < pad; i++ {
		out[i] = '0'
	}

	copy(out[pad:], digits)

	return out
}

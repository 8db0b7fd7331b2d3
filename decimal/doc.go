// Package decimal provides a fixed point base 10 number with an explicit
// sign bit.
//
// The equation for a decimal number is:
//
//  number = (-1)^negative * value * 10^-scale
//
// Where value is an unsigned magnitude, scale is the count of digits to the
// right of the decimal point, and negative is the sign bit. For example:
//
//   12.31 = {Value: 1231, Scale: 2, Negative: false}
//  -12.31 = {Value: 1231, Scale: 2, Negative: true}
//
// Signed Zero
//
// The sign bit is kept even when the magnitude is zero. Overpunched fields
// always carry a sign, so a field such as "00}" decodes to negative zero and
// must encode back to the same characters. Negative zero compares equal to
// positive zero with Equal but not with Identical, and it renders as "-0.00".
//
// Rounding
//
// Reducing the scale of a value rounds half to even, the rounding used by
// github.com/govalues/decimal:
//
//  0.125 -> 0.12
//  0.135 -> 0.14
//
// Limits
//
// Scale may be 0 through MaxScale. Value may be any uint64, although the
// overpunch engines restrict field magnitudes to the signed 64-bit range.
package decimal

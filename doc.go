// Package overpunch converts between decimal values and fixed-width
// overpunched text fields.
//
// Overpunch is the legacy mainframe convention of storing a signed number as
// plain digits where the last character carries both the final digit and the
// sign of the whole value (see package encoding for the table). The scale of
// a field is implied by its layout, so it is passed explicitly or derived from
// a picture clause (see package picture):
//
//  | Field  | Scale | Value   |
//  |--------|-------|---------|
//  | 123A   | 2     | 12.31   |
//  | 123J   | 2     | -12.31  |
//  | 2258{  | 2     | 225.80  |
//  | 00}    | 2     | -0.00   |
//  |--------|-------|---------|
//
// Extraction
//
// Every character except the last must be a plain digit. The last character
// is decoded with the field's Encoding and supplies the sign. Digits are
// accumulated into a signed 64-bit magnitude with overflow checking. The sign
// is applied even when the magnitude is zero, producing negative zero.
//
// Formatting
//
// The value is rescaled to the field scale rounding half to even, rendered
// left padded to at least scale+1 digits, and the last digit is replaced by
// its encoded form. The sign of a zero value is read from the value itself,
// so negative zero round trips.
//
// All functions are pure and safe for concurrent use.
package overpunch

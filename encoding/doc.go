// Package encoding provides the character level sign and digit mapping used
// by overpunched numeric fields.
//
// An overpunched field stores a number as a run of plain digits where the
// final character jointly carries the last digit and the sign of the whole
// value. On punched cards this was done by adding a zone punch to the last
// column, so the characters that result are letters and braces:
//
//  | Digit | Positive | Negative |
//  |-------|----------|----------|
//  |   0   |    {     |    }     |
//  |   1   |    A     |    J     |
//  |   2   |    B     |    K     |
//  |   3   |    C     |    L     |
//  |   4   |    D     |    M     |
//  |   5   |    E     |    N     |
//  |   6   |    F     |    O     |
//  |   7   |    G     |    P     |
//  |   8   |    H     |    Q     |
//  |   9   |    I     |    R     |
//  |-------|----------|----------|
//
// A plain digit in the final position is read as positive (an unsigned
// field).
//
// Other tables can be used by implementing Encoding. Implementations must be
// stateless so they can be shared freely between goroutines.
package encoding

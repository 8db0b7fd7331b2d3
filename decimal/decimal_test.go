package decimal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/calebcase/oops"
	gv "github.com/govalues/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/overpunch/decimal"
	"github.com/calebcase/overpunch/integer"
)

func TestNew(t *testing.T) {
	require.Equal(t, decimal.Decimal{Value: 1231, Scale: 2}, decimal.New(1231, 2))
	require.Equal(t, decimal.Decimal{Value: 1231, Scale: 2, Negative: true}, decimal.New(-1231, 2))
	require.Equal(t, decimal.Decimal{Value: 1 << 63, Negative: true}, decimal.New(math.MinInt64, 0))
	require.Equal(t, decimal.Decimal{Scale: 3, Negative: true}, decimal.NegativeZero(3))

	require.Panics(t, func() { decimal.New(1, decimal.MaxScale+1) })
	require.Panics(t, func() { decimal.New(1, -1) })
}

func TestParse(t *testing.T) {
	type TC struct {
		Input  string
		Output decimal.Decimal
		String string
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "12.31",
			Output: decimal.Decimal{Value: 1231, Scale: 2},
			String: "12.31",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-12.31",
			Output: decimal.Decimal{Value: 1231, Scale: 2, Negative: true},
			String: "-12.31",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "+12.30",
			Output: decimal.Decimal{Value: 1230, Scale: 2},
			String: "12.30",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-0.00",
			Output: decimal.Decimal{Scale: 2, Negative: true},
			String: "-0.00",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0",
			Output: decimal.Decimal{},
			String: "0",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0.05",
			Output: decimal.Decimal{Value: 5, Scale: 2},
			String: "0.05",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  ".5",
			Output: decimal.Decimal{Value: 5, Scale: 1},
			String: "0.5",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "7.",
			Output: decimal.Decimal{Value: 7},
			String: "7",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0012",
			Output: decimal.Decimal{Value: 12},
			String: "12",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "18446744073709551615",
			Output: decimal.Decimal{Value: math.MaxUint64},
			String: "18446744073709551615",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			d, err := decimal.Parse(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, d, tc.Mark)
			require.Equal(t, tc.String, d.String(), tc.Mark)
		})
	}

	t.Run("errors", func(t *testing.T) {
		for _, input := range []string{"", "-", "+", ".", "1.2.3", "12a", "1,000", " 1", "--1"} {
			_, err := decimal.Parse(input)
			require.Error(t, err, input)
			require.True(t, decimal.Error.Has(err), input)
			require.ErrorIs(t, err, decimal.ErrSyntax, input)
			require.EqualError(t, err, "decimal: invalid syntax", input)
		}

		_, err := decimal.Parse("18446744073709551616")
		require.ErrorIs(t, err, integer.ErrOverflow)
		require.True(t, decimal.Error.Has(err))

		_, err = decimal.Parse("0.00000000000000000000000000001")
		var serr *decimal.ScaleError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, 29, serr.Scale)
	})
}

func TestMustParse(t *testing.T) {
	require.Equal(t, decimal.New(-5, 2), decimal.MustParse("-0.05"))
	require.Panics(t, func() { decimal.MustParse("x") })
}

func TestText(t *testing.T) {
	d := decimal.NegativeZero(2)

	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-0.00", string(text))

	var out decimal.Decimal
	require.NoError(t, out.UnmarshalText(text))
	require.True(t, d.Identical(out))

	require.Error(t, out.UnmarshalText([]byte("nope")))
}

func TestSign(t *testing.T) {
	require.Equal(t, 1, decimal.MustParse("0.01").Sign())
	require.Equal(t, -1, decimal.MustParse("-0.01").Sign())
	require.Equal(t, 0, decimal.MustParse("0.00").Sign())
	require.Equal(t, 0, decimal.MustParse("-0.00").Sign())

	require.True(t, decimal.MustParse("-0.00").IsNeg())
	require.True(t, decimal.MustParse("-0.00").IsZero())
	require.False(t, decimal.MustParse("-0.00").Abs().IsNeg())
	require.True(t, decimal.MustParse("0").Neg().IsNeg())
	require.False(t, decimal.MustParse("-1").Neg().IsNeg())
}

func TestRescale(t *testing.T) {
	type TC struct {
		Input  string
		Scale  int
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: "12.3", Scale: 2, Output: "12.30", Mark: oops.New("unexpected")},
		{Input: "12.31", Scale: 2, Output: "12.31", Mark: oops.New("unexpected")},
		{Input: "1.23", Scale: 4, Output: "1.2300", Mark: oops.New("unexpected")},
		{Input: "0.125", Scale: 2, Output: "0.12", Mark: oops.New("unexpected")},
		{Input: "0.135", Scale: 2, Output: "0.14", Mark: oops.New("unexpected")},
		{Input: "0.1251", Scale: 2, Output: "0.13", Mark: oops.New("unexpected")},
		{Input: "-2.5", Scale: 0, Output: "-2", Mark: oops.New("unexpected")},
		{Input: "-3.5", Scale: 0, Output: "-4", Mark: oops.New("unexpected")},
		{Input: "0.004", Scale: 2, Output: "0.00", Mark: oops.New("unexpected")},
		{Input: "-0.004", Scale: 2, Output: "-0.00", Mark: oops.New("unexpected")},
		{Input: "-0", Scale: 28, Output: "-0.0000000000000000000000000000", Mark: oops.New("unexpected")},
		{Input: "9.9999999999999999", Scale: 0, Output: "10", Mark: oops.New("unexpected")},
		{Input: "0.0000000000000000000000000001", Scale: 0, Output: "0", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			d, err := decimal.MustParse(tc.Input).Rescale(tc.Scale)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, d.String(), tc.Mark)
			require.Equal(t, tc.Scale, d.Scale, tc.Mark)
		})
	}

	t.Run("overflow", func(t *testing.T) {
		_, err := decimal.MustParse("1").Rescale(20)
		require.ErrorIs(t, err, integer.ErrOverflow)
		require.True(t, decimal.Error.Has(err))

		_, err = decimal.MustParse("18446744073709551615").Rescale(1)
		require.ErrorIs(t, err, integer.ErrOverflow)
	})

	t.Run("scale", func(t *testing.T) {
		var serr *decimal.ScaleError

		_, err := decimal.MustParse("1").Rescale(29)
		require.True(t, errors.As(err, &serr))
		require.Equal(t, 29, serr.Scale)

		_, err = decimal.MustParse("1").Rescale(-1)
		require.True(t, errors.As(err, &serr))
		require.Equal(t, -1, serr.Scale)

		_, err = decimal.Decimal{Value: 1, Scale: 40}.Rescale(2)
		require.True(t, errors.As(err, &serr))
		require.Equal(t, 40, serr.Scale)
	})
}

func TestEqual(t *testing.T) {
	require.True(t, decimal.MustParse("12.3").Equal(decimal.MustParse("12.30")))
	require.True(t, decimal.MustParse("-12.3").Equal(decimal.MustParse("-12.300")))
	require.True(t, decimal.MustParse("0").Equal(decimal.MustParse("-0.00")))
	require.False(t, decimal.MustParse("12.3").Equal(decimal.MustParse("-12.3")))
	require.False(t, decimal.MustParse("12.3").Equal(decimal.MustParse("12.31")))
	require.False(t, decimal.MustParse("0").Equal(decimal.MustParse("0.01")))
	require.False(t, decimal.MustParse("18446744073709551615").Equal(decimal.MustParse("1.0")))

	require.False(t, decimal.MustParse("0").Identical(decimal.MustParse("-0")))
	require.False(t, decimal.MustParse("12.3").Identical(decimal.MustParse("12.30")))
	require.True(t, decimal.MustParse("-12.30").Identical(decimal.New(-1230, 2)))
}

func TestGovalues(t *testing.T) {
	d := decimal.FromGovalues(gv.MustParse("-12.31"))
	require.Equal(t, decimal.Decimal{Value: 1231, Scale: 2, Negative: true}, d)

	v, err := decimal.MustParse("225.80").Govalues()
	require.NoError(t, err)
	require.Equal(t, "225.80", v.String())

	v, err = decimal.NegativeZero(2).Govalues()
	require.NoError(t, err)
	require.True(t, v.IsZero())
	require.False(t, v.IsNeg())

	// Both round half to even.
	for _, input := range []string{"0.125", "0.135", "2.5", "3.5", "-1.005", "7.77777"} {
		for scale := 0; scale < decimal.MustParse(input).Scale; scale++ {
			ours, err := decimal.MustParse(input).Rescale(scale)
			require.NoError(t, err)

			theirs := gv.MustParse(input).Round(scale)
			require.Equal(t, theirs.String(), ours.String(), "%s at %d", input, scale)
		}
	}
}

package picture_test

import (
	"errors"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/overpunch/picture"
)

func TestScale(t *testing.T) {
	type TC struct {
		Format string
		Scale  int
		Mark   error
	}

	tcs := []TC{
		{Format: "s9(7)v999", Scale: 3, Mark: oops.New("unexpected")},
		{Format: "9(7)v999", Scale: 3, Mark: oops.New("unexpected")},
		{Format: "s9(7)v99", Scale: 2, Mark: oops.New("unexpected")},
		{Format: "s9(7)v9(2)", Scale: 2, Mark: oops.New("unexpected")},
		{Format: "S9(7)V9(12)", Scale: 12, Mark: oops.New("unexpected")},
		{Format: "s9v99", Scale: 2, Mark: oops.New("unexpected")},
		{Format: "9v9", Scale: 1, Mark: oops.New("unexpected")},
		{Format: "s9(7)v", Scale: 0, Mark: oops.New("unexpected")},
		{Format: "s9(3)", Scale: 0, Mark: oops.New("unexpected")},
		{Format: "s9(4)", Scale: 0, Mark: oops.New("unexpected")},
		{Format: "999", Scale: 0, Mark: oops.New("unexpected")},
		{Format: "s", Scale: 0, Mark: oops.New("unexpected")},
		{Format: "s9(7)v9(30)", Scale: 30, Mark: oops.New("unexpected")},

		// The integer group is not validated.
		{Format: "xv99", Scale: 2, Mark: oops.New("unexpected")},
		{Format: "v9(3)", Scale: 3, Mark: oops.New("unexpected")},
		{Format: "sxyz", Scale: 0, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Format, func(t *testing.T) {
			scale, err := picture.Scale(tc.Format)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Scale, scale, tc.Mark)
		})
	}
}

func TestScaleErrors(t *testing.T) {
	for _, format := range []string{
		"xxx",
		"",
		"s9(1)v9a",
		"s9(7)v9(",
		"s9(7)v9()",
		"s9(7)v9(x)",
		"s9(7)v9(2",
		"s9(7)v9(-2)",
		"s9(7)v9(2)9",
		"s9(7)v99v",
		"s9(7)v9(99999999999999999999999)",
		"+9(3)",

		// Only a lowercase sign letter is recognized without a marker.
		"S9(3)",
		"S9(4)",
		"S999",
		"S",
	} {
		t.Run(format, func(t *testing.T) {
			_, err := picture.Scale(format)
			require.Error(t, err)
			require.True(t, picture.Error.Has(err))

			var ferr *picture.FormatError
			require.True(t, errors.As(err, &ferr))
			require.Equal(t, format, ferr.Format)
			require.Contains(t, err.Error(), "invalid field format string provided")
		})
	}
}

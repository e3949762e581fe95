package numformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N(17.2)", numformat.Format{Precision: 17, Scale: 2}.String())
	assert.Equal(t, "N(5)", numformat.Format{Precision: 5}.String())
	assert.Equal(t, "N(5)", numformat.Format{Precision: 5, NonNegative: true}.String())
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, numformat.Format{Precision: 1}.Validate())
	assert.NoError(t, numformat.Format{Precision: 17, Scale: 16}.Validate())
	assert.ErrorIs(t, numformat.Format{}.Validate(), numformat.ErrInvalidConfiguration)
	assert.ErrorIs(t, numformat.Format{Precision: 2, Scale: -1}.Validate(), numformat.ErrInvalidConfiguration)
	assert.ErrorIs(t, numformat.Format{Precision: 2, Scale: 2}.Validate(), numformat.ErrInvalidConfiguration)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("valid notations", func(t *testing.T) {
		tests := map[string]numformat.Format{
			"N(17.2)":   {Precision: 17, Scale: 2},
			"N(17,2)":   {Precision: 17, Scale: 2},
			"n(4.2)":    {Precision: 4, Scale: 2},
			"N(5)":      {Precision: 5},
			"  N(5)  ":  {Precision: 5},
			"N(010.03)": {Precision: 10, Scale: 3},
		}
		for in, want := range tests {
			got, err := numformat.ParseFormat(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("malformed notations", func(t *testing.T) {
		for _, in := range []string{"", "N", "N()", "17.2", "N(17.)", "N(.2)", "N(-1)", "N(1.2.3)", "M(5)", "N(5) x", "N(99999999999999999999)"} {
			_, err := numformat.ParseFormat(in)
			assert.ErrorIs(t, err, numformat.ErrInvalidNotation, in)
		}
	})

	t.Run("invalid configuration", func(t *testing.T) {
		for _, in := range []string{"N(0)", "N(2.2)", "N(1.5)"} {
			_, err := numformat.ParseFormat(in)
			assert.ErrorIs(t, err, numformat.ErrInvalidConfiguration, in)
			assert.NotErrorIs(t, err, numformat.ErrInvalidNotation, in)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, f := range []numformat.Format{{Precision: 1}, {Precision: 17, Scale: 2}, {Precision: 38, Scale: 37}} {
			got, err := numformat.ParseFormat(f.String())
			require.NoError(t, err)
			assert.Equal(t, f, got)
		}
	})
}

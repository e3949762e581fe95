package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numcheck/pkg/numformat"
	"github.com/dmitrymomot/numcheck/pkg/validator"
)

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	v := numformat.MustNew(4, numformat.WithScale(2), numformat.WithNonNegative())

	t.Run("passes for conforming value", func(t *testing.T) {
		rule := validator.NumberFormat("amount", "1.23", v)
		assert.True(t, rule.Check())
		assert.Equal(t, "amount", rule.Error.Field)
		assert.Equal(t, map[string]any{
			"field":     "amount",
			"format":    "N(4.2)",
			"precision": 4,
			"scale":     2,
		}, rule.Error.TranslationValues)
	})

	tests := []struct {
		name    string
		value   string
		key     string
		message string
	}{
		{"empty", "", "validation.number.empty", "field is required"},
		{"malformed", "1.2.3", "validation.number.malformed", "must be a number in format N(4.2)"},
		{"precision", "123.45", "validation.number.precision", "must have at most 4 digits including the sign"},
		{"scale", "1.234", "validation.number.scale", "must have at most 2 fractional digits"},
		{"negative", "-1.2", "validation.number.negative", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run("fails for "+tt.name, func(t *testing.T) {
			rule := validator.NumberFormat("amount", tt.value, v)
			assert.False(t, rule.Check())
			assert.Equal(t, tt.key, rule.Error.TranslationKey)
			assert.Equal(t, tt.message, rule.Error.Message)
		})
	}

	t.Run("nil validator always fails", func(t *testing.T) {
		rule := validator.NumberFormat("amount", "1", nil)
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.number.config", rule.Error.TranslationKey)
	})
}

func TestDecimalFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.DecimalFormat("delta", "-1.23", 4, 2).Check())
	assert.False(t, validator.DecimalFormat("delta", "-1.23", 3, 2).Check())
	assert.True(t, validator.DecimalFormat("delta", "12,0", 17, 2).Check())

	rule := validator.DecimalFormat("delta", "1", 2, 2)
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.number.config", rule.Error.TranslationKey)
	assert.Contains(t, rule.Error.Message, "invalid number format")
}

func TestNonNegativeDecimal(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NonNegativeDecimal("amount", "0.0", 17, 2).Check())
	assert.True(t, validator.NonNegativeDecimal("amount", "+0.0", 17, 2).Check())
	assert.False(t, validator.NonNegativeDecimal("amount", "-1.23", 17, 2).Check())
	assert.False(t, validator.NonNegativeDecimal("amount", "121.2345", 6, 4).Check())
	assert.False(t, validator.NonNegativeDecimal("amount", "1", 0, 0).Check())
}

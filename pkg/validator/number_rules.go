package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

// NumberFormat validates that value conforms to the format enforced by v.
// The error message and translation key describe the first failed constraint.
func NumberFormat(field, value string, v *numformat.Validator) Rule {
	if v == nil {
		return invalidNumberFormat(field, errors.New("nil validator"))
	}

	reason := v.Check(value)
	return Rule{
		Check: func() bool {
			return reason == nil
		},
		Error: numberError(field, v.Format(), reason),
	}
}

// DecimalFormat validates value against N(precision.scale).
// An invalid precision/scale pair produces a rule that always fails.
func DecimalFormat(field, value string, precision, scale int) Rule {
	v, err := numformat.New(precision, numformat.WithScale(scale))
	if err != nil {
		return invalidNumberFormat(field, err)
	}
	return NumberFormat(field, value, v)
}

// NonNegativeDecimal works like DecimalFormat but also rejects a leading '-'.
func NonNegativeDecimal(field, value string, precision, scale int) Rule {
	v, err := numformat.New(precision, numformat.WithScale(scale), numformat.WithNonNegative())
	if err != nil {
		return invalidNumberFormat(field, err)
	}
	return NumberFormat(field, value, v)
}

func numberError(field string, f numformat.Format, reason error) ValidationError {
	var message, key string
	switch {
	case reason == nil:
		message, key = "must be a valid number", "validation.number"
	case errors.Is(reason, numformat.ErrEmpty):
		message, key = "field is required", "validation.number.empty"
	case errors.Is(reason, numformat.ErrPrecisionExceeded):
		message, key = fmt.Sprintf("must have at most %d digits including the sign", f.Precision), "validation.number.precision"
	case errors.Is(reason, numformat.ErrScaleExceeded):
		message, key = fmt.Sprintf("must have at most %d fractional digits", f.Scale), "validation.number.scale"
	case errors.Is(reason, numformat.ErrNegative):
		message, key = "must not be negative", "validation.number.negative"
	default:
		message, key = fmt.Sprintf("must be a number in format %s", f), "validation.number.malformed"
	}

	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field":     field,
			"format":    f.String(),
			"precision": f.Precision,
			"scale":     f.Scale,
		},
	}
}

func invalidNumberFormat(field string, err error) Rule {
	return Rule{
		Check: func() bool {
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid number format: " + err.Error(),
			TranslationKey: "validation.number.config",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

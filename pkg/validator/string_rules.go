package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredEither validates that exactly one of two alternative fields is set.
func RequiredEither(field, value, otherField, otherValue string) Rule {
	return Rule{
		Check: func() bool {
			return (strings.TrimSpace(value) != "") != (strings.TrimSpace(otherValue) != "")
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("exactly one of %s or %s is required", field, otherField),
			TranslationKey: "validation.required_either",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

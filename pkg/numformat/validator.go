package numformat

import (
	"fmt"
	"regexp"
)

// Groups: 1 sign, 2 integer part, 4 fractional part.
var numberRegex = regexp.MustCompile(`(?i)^([+-]?)(\d+)([.,](\d+))?$`)

// Option configures a Validator.
type Option func(*Format)

// WithScale sets the maximum number of fractional digits. Defaults to 0.
func WithScale(scale int) Option {
	return func(f *Format) { f.Scale = scale }
}

// WithNonNegative rejects values starting with '-'.
func WithNonNegative() Option {
	return func(f *Format) { f.NonNegative = true }
}

// Validator checks strings against a Format.
type Validator struct {
	format Format
}

// New returns a Validator for N(precision.scale).
// It returns an error wrapping ErrInvalidConfiguration if precision <= 0
// or the scale is outside [0, precision).
func New(precision int, opts ...Option) (*Validator, error) {
	f := Format{Precision: precision}
	for _, opt := range opts {
		opt(&f)
	}
	return NewFromFormat(f)
}

// NewFromFormat returns a Validator for the given format.
func NewFromFormat(f Format) (*Validator, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Validator{format: f}, nil
}

// MustNew works like New but panics if the configuration is invalid.
func MustNew(precision int, opts ...Option) *Validator {
	v, err := New(precision, opts...)
	if err != nil {
		panic(fmt.Sprintf("numformat: %v", err))
	}
	return v
}

// Format returns the format the validator enforces.
func (v *Validator) Format() Format {
	return v.format
}

func (v *Validator) String() string {
	return v.format.String()
}

// IsValid reports whether value conforms to the format.
func (v *Validator) IsValid(value string) bool {
	return v.Check(value) == nil
}

// IsValidPtr is IsValid for optional input; nil is never valid.
func (v *Validator) IsValidPtr(value *string) bool {
	if value == nil {
		return false
	}
	return v.IsValid(*value)
}

// Check returns nil if value conforms to the format, otherwise one of
// ErrEmpty, ErrMalformed, ErrPrecisionExceeded, ErrScaleExceeded or ErrNegative.
func (v *Validator) Check(value string) error {
	if value == "" {
		return ErrEmpty
	}

	m := numberRegex.FindStringSubmatch(value)
	if m == nil {
		return ErrMalformed
	}

	sign, intPart, fracPart := m[1], m[2], m[4]
	if len(sign)+len(intPart)+len(fracPart) > v.format.Precision {
		return ErrPrecisionExceeded
	}
	if len(fracPart) > v.format.Scale {
		return ErrScaleExceeded
	}
	if v.format.NonNegative && sign == "-" {
		return ErrNegative
	}
	return nil
}

package numformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var notationRegex = regexp.MustCompile(`(?i)^N\((\d+)(?:[.,](\d+))?\)$`)

// Format describes a fixed-point numeric format.
type Format struct {
	// Precision is the maximum count of digits plus the sign character.
	Precision int
	// Scale is the maximum count of digits after the separator.
	Scale int
	// NonNegative rejects values with a leading '-'.
	NonNegative bool
}

// Validate reports whether the format can be used to build a Validator.
func (f Format) Validate() error {
	if f.Precision <= 0 {
		return fmt.Errorf("%w: precision must be a positive number, got %d", ErrInvalidConfiguration, f.Precision)
	}
	if f.Scale < 0 || f.Scale >= f.Precision {
		return fmt.Errorf("%w: scale must be a non-negative number less than precision %d, got %d",
			ErrInvalidConfiguration, f.Precision, f.Scale)
	}
	return nil
}

// String renders the format in N(m) or N(m.k) notation.
// The sign policy has no notation and is not rendered.
func (f Format) String() string {
	if f.Scale == 0 {
		return "N(" + strconv.Itoa(f.Precision) + ")"
	}
	return "N(" + strconv.Itoa(f.Precision) + "." + strconv.Itoa(f.Scale) + ")"
}

// ParseFormat parses N(m), N(m.k) or N(m,k) notation.
// The returned format is validated; NonNegative is always false.
func ParseFormat(s string) (Format, error) {
	m := notationRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Format{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	precision, err := strconv.Atoi(m[1])
	if err != nil {
		return Format{}, fmt.Errorf("%w: precision %q: %v", ErrInvalidNotation, m[1], err)
	}

	var scale int
	if m[2] != "" {
		if scale, err = strconv.Atoi(m[2]); err != nil {
			return Format{}, fmt.Errorf("%w: scale %q: %v", ErrInvalidNotation, m[2], err)
		}
	}

	f := Format{Precision: precision, Scale: scale}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

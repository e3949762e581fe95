package numformat

import "errors"

var (
	// ErrInvalidConfiguration is returned when precision and scale do not describe a valid format.
	ErrInvalidConfiguration = errors.New("invalid number format configuration")

	// ErrInvalidNotation is returned when a format string is not N(m) or N(m.k).
	ErrInvalidNotation = errors.New("invalid number format notation")
)

// Reasons reported by Validator.Check.
var (
	ErrEmpty             = errors.New("value is empty")
	ErrMalformed         = errors.New("value is not a decimal number")
	ErrPrecisionExceeded = errors.New("value has too many digits")
	ErrScaleExceeded     = errors.New("value has too many fractional digits")
	ErrNegative          = errors.New("negative values are not allowed")
)

// Catalog errors.
var (
	ErrCatalogCancelled = errors.New("loading format catalog cancelled")
	ErrCatalogRead      = errors.New("failed to read format catalog")
	ErrCatalogParse     = errors.New("failed to parse format catalog")
	ErrCatalogEmpty     = errors.New("format catalog has no formats")
	ErrCatalogEntry     = errors.New("invalid format catalog entry")
)

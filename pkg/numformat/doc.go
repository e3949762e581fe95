// Package numformat validates strings against fixed-point numeric formats
// written as N(m.k), where m is the maximum number of characters in the
// number counting a leading sign, the integer part and the
// fractional part (the separator is not counted), and k is the maximum number
// of fractional digits. A format without a fractional part is written N(m).
//
// # Usage
//
//	v, err := numformat.New(17, numformat.WithScale(2), numformat.WithNonNegative())
//	if err != nil {
//	    // errors.Is(err, numformat.ErrInvalidConfiguration)
//	}
//	v.IsValid("12,50") // true
//	v.IsValid("-1.23") // false: negative values are not allowed
//
// Check returns the reason a value was rejected:
//
//	if err := v.Check("1.234"); errors.Is(err, numformat.ErrScaleExceeded) {
//	    // too many fractional digits
//	}
//
// Either '.' or ',' separates the integer and fractional parts. Surrounding
// whitespace is never tolerated.
//
// # Catalog
//
// Named formats can be declared in YAML and loaded with LoadCatalog:
//
//	formats:
//	  amount:
//	    format: N(17.2)
//	    non_negative: true
//	  delta: N(4.2)
//
// # Concurrency
//
// A Validator is immutable once built and can be shared between goroutines
// without synchronization. Catalog guards its entries with a lock, so lookups
// may run concurrently with Add.
package numformat

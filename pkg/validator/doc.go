// Package validator provides declarative validation rules that aggregate
// field-level failures into a single error value.
//
// A Rule couples a Check function with a ValidationError carrying a message
// and a translation key. Apply evaluates rules and returns ValidationErrors,
// which implements error, so callers can return it directly and later recover
// the per-field details with ExtractValidationErrors.
//
// The number rules wrap numformat validators, so a form field holding a
// fixed-point number such as "12,50" can be checked against N(m.k) together
// with the rest of the request:
//
//	err := validator.Apply(
//	    validator.RequiredString("amount", req.Amount),
//	    validator.NonNegativeDecimal("amount", req.Amount, 17, 2),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("amount") ...
//	}
//
// Translation keys follow the "validation.<rule>" convention; number rules
// use "validation.number.<reason>" and carry "precision", "scale" and
// "format" values for message templates.
//
// Rules hold no shared state and are safe to build from multiple goroutines.
package validator

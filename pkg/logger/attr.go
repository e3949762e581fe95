package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Reason records why a value was rejected under the key "reason".
// If err is nil, it returns an empty Attr.
func Reason(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("reason", err.Error())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Notation records a number format notation under the key "format".
func Notation(notation string) slog.Attr {
	return slog.String("format", notation)
}

// Value records the checked input under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Function records the name of the validated function under "function".
func Function(name string) slog.Attr {
	return slog.String("function", name)
}

// Position records a zero-based argument position under "position".
func Position(pos int) slog.Attr {
	return slog.Int("position", pos)
}

// Constraint records the violated constraint under "constraint".
func Constraint(msg string) slog.Attr {
	return slog.String("constraint", msg)
}

// Choice records a rejected choice under "choice". Values are rendered with
// fmt so that slices and maps stay readable in text output.
func Choice(v any) slog.Attr {
	switch v.(type) {
	case nil:
		return slog.Attr{Key: "choice", Value: slog.StringValue("<nil>")}
	case string, bool, int, int64, float64:
		return slog.Any("choice", v)
	default:
		return slog.String("choice", fmt.Sprint(v))
	}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

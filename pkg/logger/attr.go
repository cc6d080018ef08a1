package logger

import (
	"context"
	"log/slog"
)

// Attribute helpers use the empty Attr pattern for nil safety, so sinks can
// log attributes without guarding every call site.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// MessageID creates an attribute for a localization message id.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Language creates an attribute for a locale code.
func Language(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("language", lang)
}

// Count creates an attribute for batch sizes and similar counters.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// SlogSink adapts a structured logger into an overlay error sink: every
// reported diagnostic logs at warn level. A nil logger uses slog.Default.
func SlogSink(log *slog.Logger) func(error) {
	if log == nil {
		log = slog.Default()
	}
	return func(err error) {
		if err == nil {
			return
		}
		log.LogAttrs(context.Background(), slog.LevelWarn, "localization error", Error(err))
	}
}

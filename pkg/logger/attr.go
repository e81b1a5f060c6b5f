package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Statement records a statement's SQL text under the key "statement".
func Statement(sql string) slog.Attr {
	return slog.String("statement", sql)
}

// StatementName records a server-side statement name under the key
// "statement_name".
func StatementName(name string) slog.Attr {
	return slog.String("statement_name", name)
}

// ConnID records a connection identifier under the key "conn_id".
func ConnID(id string) slog.Attr {
	return slog.String("conn_id", id)
}

// Cache records a cache name under the key "cache".
func Cache(name string) slog.Attr {
	return slog.String("cache", name)
}

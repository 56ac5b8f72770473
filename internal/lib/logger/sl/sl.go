package sl

import (
	"log/slog"
)

// Err returns error attribute for slog.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

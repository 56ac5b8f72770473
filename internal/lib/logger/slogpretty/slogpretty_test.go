package slogpretty

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"appreview/internal/lib/logger/sl"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
	}
	log := slog.New(opts.NewPrettyHandler(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With(slog.String("op", "Review.Approve")).
		Error("failed to change review status", sl.Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "failed to change review status")
	assert.Contains(t, out, `"op": "Review.Approve"`)
	assert.Contains(t, out, `"error": "boom"`)
}

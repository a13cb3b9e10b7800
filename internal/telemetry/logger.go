// Package telemetry builds the structured logger the runtime uses for
// diagnostics. It never writes to stdout/stderr while a terminal app owns
// the screen, so a misbehaving log call can't corrupt the frame buffer.
package telemetry

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures the logger factory.
type Options struct {
	// Path is the file to append log lines to. Empty discards all output.
	Path string
	// Level is the minimum level that reaches the sink.
	Level slog.Level
}

// New builds a slog.Logger writing tint-formatted lines to Path, or a
// fully discarding logger when Path is empty.
func New(opts Options) (*slog.Logger, func() error, error) {
	if opts.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	handler := tint.NewHandler(f, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(handler), f.Close, nil
}

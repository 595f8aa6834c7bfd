package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	charmLog "github.com/charmbracelet/log"
)

const prefix = "timetrack"

type Options struct {
	Level string
	// Logfmt writes unstyled key=value lines instead of the styled text
	// format.
	Logfmt bool
}

// New returns a slog.Logger writing through a charm log handler.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := charmLog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", opts.Level, err)
	}
	if w == nil {
		w = io.Discard
	}

	formatter := charmLog.TextFormatter
	if opts.Logfmt {
		formatter = charmLog.LogfmtFormatter
	}
	handler := charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

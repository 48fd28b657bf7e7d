// Package logging sets up the app's slog logger.
//
// The TUI owns the terminal, so log output goes to a file under the
// configured log directory instead of stdout. The file is plain text; the
// in-app log overlay re-renders lines itself, and escape codes would garble
// it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

// Open creates (or appends to) the log file at path and returns a logger
// writing to it. The caller owns the returned closer.
func Open(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, level), file, nil
}

// New builds a logger writing tint's compact format to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})
	return slog.New(h).With("app", "umdgym")
}

// Discard returns a logger that drops everything. Used when the log file
// cannot be opened; the app keeps running without one.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFile opens path for appending and logs there. The terminal belongs to
// the dashboard while it runs, so the TUI never logs to stdout or stderr.
// The caller closes the returned file.
func NewFile(path string, debug bool) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := New(f, debug)

	// keep stray stdlib log calls off the terminal too
	log.SetOutput(f)
	return logger, f, nil
}

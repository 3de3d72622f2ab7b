// Package debuglog sets up the structured logger. The TUI owns the terminal,
// so output goes to a file, or is discarded when no file is configured.
package debuglog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Open creates a text logger writing to path at the given level. The
// returned close function flushes and closes the file. An empty path
// returns a discarding logger.
func Open(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

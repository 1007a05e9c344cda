package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ridgely/clefdrill/internal/config"
)

// newLogger builds the process logger. Output goes to the configured log
// file since writing to the terminal would corrupt the TUI; with no file
// configured, logs are discarded. The returned func closes the log file.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), closeLog, nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"
)

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// logFileName returns scrape_<name>_<timestamp>.log with name reduced to file-safe characters.
func logFileName(name string, now time.Time) string {
	return fmt.Sprintf("scrape_%s_%s.log", unsafeFileChars.ReplaceAllString(name, "-"), now.Format("20060102_150405"))
}

// logName names the per-run log file of commands that scrape; other commands log to stdout only.
func logName(cmd *cobra.Command, args []string) string {
	switch cmd.Name() {
	case "scrape":
		if len(args) > 0 {
			return args[0]
		}
	case "run":
		return "all"
	case "schedule":
		return "schedule"
	}
	return ""
}

// newLogger builds the process logger. With logDir and name set it writes to stdout and to
// logDir/scrape_<name>_<timestamp>.log; the returned function closes that file.
func newLogger(level, logDir, name string, now time.Time) (*slog.Logger, func(), error) {
	if logDir == "" || name == "" {
		return setupLogger(level, os.Stdout), func() {}, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(logDir, logFileName(name, now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := setupLogger(level, io.MultiWriter(os.Stdout, f))
	logger.Debug("logging to file", "path", path)

	return logger, func() { _ = f.Close() }, nil
}

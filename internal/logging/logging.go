// Package logging sets up the structured log file menus write while they
// own the terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const logFile = ".gridmenu/logs/gridmenu.log"

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Path returns the log file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, logFile)
}

// Open appends JSON records at level and above to the log file under
// baseDir. The terminal belongs to the menu, so nothing is logged to
// stderr. Close the returned closer when done.
func Open(baseDir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	path := Path(baseDir)

	// Ensure logs directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	return New(f, level), f, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by newLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// logLevels maps every accepted -log-level value to its slog level.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name (case-insensitive) to a slog.Level.
// The empty string means info.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	level, ok := logLevels[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// ParseLogFormat normalizes a format name. The empty string means text.
func ParseLogFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "", LogFormatText:
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
	}
}

// newLogger builds a logger writing to w. It never touches slog.Default, so
// each App logs in isolation.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

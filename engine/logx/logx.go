// Package logx configures the process-wide slog logger.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the level selected by the last Setup. Messages below it are
// dropped.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the -vv / -v / -q command line flags to a level. The
// flags are checked in that order, so -vv wins over -q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses debug, info, warn or error (case-insensitive, with
// slog's +N/-N offsets). The empty string is warn.
func LevelFromString(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("logx: %w", err)
	}
	return l, nil
}

// Setup installs a text handler writing to w as the default logger.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	UserLevel = level
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}

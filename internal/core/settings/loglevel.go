package settings

import (
	"log/slog"
	"strings"
)

// LogLevel is the verbosity forwarded to the log-control subsystem.
// Unlike the Show* toggles its canonical rendering is lower-case.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LevelTrace sits below slog's predefined levels; slog has no trace constant.
const LevelTrace = slog.Level(-8)

func (l LogLevel) String() string { return string(l) }

// Slog maps the level onto the slog scale used by the logging subsystem.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelTrace:
		return LevelTrace
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ParseLogLevel(raw string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LogLevelTrace, true
	case "debug":
		return LogLevelDebug, true
	case "info":
		return LogLevelInfo, true
	case "warn":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	}
	return "", false
}

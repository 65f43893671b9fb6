// Package logs owns the node's logging subsystem: slog setup with JSON or
// text output, optional rotating file sink, and runtime control over the
// global level and per-scope directives. The configuration RPC surface
// reaches this package only through the Observability handle.
package logs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vantrou/memnode/internal/core/settings"
	"github.com/vantrou/memnode/internal/engine/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

type levelsStruct struct {
	Available []string
	Fallback  string
}

var Levels = levelsStruct{
	Available: []string{
		"trace", "debug", "info", "warn", "error",
	},
	Fallback: "info",
}

// SlogWriter adapts an io.Writer consumer (e.g. http.Server's ErrorLog)
// onto a slog logger at a fixed level.
type SlogWriter struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (w *SlogWriter) Write(p []byte) (n int, err error) {
	msg := string(bytes.TrimSpace(p))
	w.Logger.Log(context.TODO(), w.Level, msg)
	return len(p), nil
}

// SetupLogger builds the node logger and the Observability handle that
// controls it at runtime.
func SetupLogger(o *config.Log) (*slog.Logger, *Observability, error) {
	level, ok := settings.ParseLogLevel(*o.Level)
	if !ok {
		level, _ = settings.ParseLogLevel(Levels.Fallback)
	}

	var writer io.Writer = os.Stdout
	switch *o.OutPath {
	case "", "stdout", "1":
		writer = os.Stdout
	case "stderr", "2":
		writer = os.Stderr
	default:
		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(*o.OutPath, "event.log"),
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		writer = logFile
	}

	// The wrapper is the only level gate; the inner handler passes everything.
	handlerOpts := slog.HandlerOptions{Level: settings.LevelTrace}
	var inner slog.Handler
	if o.JSON != nil && *o.JSON {
		inner = slog.NewJSONHandler(writer, &handlerOpts)
	} else {
		inner = slog.NewTextHandler(writer, &handlerOpts)
	}

	obs := NewObservability(level)
	log := slog.New(newScopeHandler(inner, obs))

	if o.Directives != nil && *o.Directives != "" {
		if err := obs.SetLogging(*o.Directives); err != nil {
			return nil, nil, err
		}
	}
	return log, obs, nil
}

// WithScope tags a logger branch so directive overrides apply to it.
func WithScope(log *slog.Logger, scope string) *slog.Logger {
	return log.With(slog.String(ScopeKey, scope))
}

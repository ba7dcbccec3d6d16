// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"

	"github.com/use-agent/vindecoder/config"
)

// Init installs a JSON or text slog handler writing to w as the default
// logger. Binaries that use stdout as a protocol channel pass os.Stderr.
func Init(cfg config.LogConfig, w io.Writer) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps "debug", "warn" and "error" to slog levels; anything
// else is info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

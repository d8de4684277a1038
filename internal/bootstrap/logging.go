package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/boolean-maybe/kiss/config"
)

// InitLogging points the default slog logger at the configured log file.
// The terminal belongs to the UI, so logs never go to stdout; when the file
// can't be opened they are discarded. The returned func closes the file.
func InitLogging(cfg *config.Config) (*slog.LevelVar, func()) {
	level := &slog.LevelVar{}
	level.Set(ParseLogLevel(cfg.Logging.Level))

	var out io.Writer = io.Discard
	closeFn := func() {}

	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
			closeFn = func() { _ = f.Close() }
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	slog.Info("logging initialized", "level", level.Level().String(), "file", path)
	return level, closeFn
}

// ParseLogLevel maps a config level name to a slog level; unknown names give error level
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

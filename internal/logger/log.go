package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/lumberjack.v2"

	"gymontherock/internal/config"
)

// Init installs the default slog logger. Console output goes to stderr so log
// lines stay out of the operator's prompts on stdout. The returned closer
// releases the rotating file, if any.
func Init(cfg config.LogConfig) io.Closer {
	w, closer := writer(cfg, os.Stderr)
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h))
	slog.Debug("logger initialized", "level", cfg.Level, "file", cfg.File)
	return closer
}

func writer(cfg config.LogConfig, console io.Writer) (io.Writer, io.Closer) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.Console {
		writers = append(writers, console)
	}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if len(writers) == 0 {
		return io.Discard, closer
	}
	return io.MultiWriter(writers...), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

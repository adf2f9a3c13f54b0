package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"freight-service/internal/config"
)

// New builds the application logger. Development gets a human readable console,
// production gets JSON. A configured log file is rotated by lumberjack.
func New(env string, cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var console io.Writer = os.Stdout
	if env != "production" {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	out := console
	if cfg.File != "" {
		out = zerolog.MultiLevelWriter(console, fileWriter(cfg))
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "freight-service").
		Logger()
}

func fileWriter(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

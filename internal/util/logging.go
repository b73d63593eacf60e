// Package util provides common utilities including logging helpers,
// file system locations, and search query parsing.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StderrLog is the log file value that routes output to stderr.
const StderrLog = "-"

// NewLogger builds a zap logger. Format "console" selects the development
// encoder; anything else is JSON. The terminal belongs to the TUI, so output
// normally goes to a file.
func NewLogger(level, format, file string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	out := "stderr"
	if file != "" && file != StderrLog {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		out = file
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(log *zap.Logger, context string, err error) {
	if err != nil && log != nil {
		log.Warn(context, zap.Error(err))
	}
}

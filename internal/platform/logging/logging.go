package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"refdeck/internal/platform/config"
	"refdeck/internal/platform/id"
)

// New builds the process logger. While the TUI owns the terminal the logger
// writes to the configured log file; every other command logs to stderr.
func New(cfg *config.Config, toFile bool, ids id.Generator) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if toFile {
		path := cfg.LogPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("session", ids.New())), nil
}

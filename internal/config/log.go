package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// Log encodings understood by zap.
const (
	ConsoleEncoding = "console"
	JSONEncoding    = "json"
)

// LogConfig holds settings for the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Encoding is "console" or "json".
	Encoding string `yaml:"encoding"`

	// OutputPaths are zap sink URLs or file paths.
	OutputPaths []string `yaml:"output_paths"`

	// Development switches to zap's development defaults.
	Development bool `yaml:"development"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:       "info",
		Encoding:    ConsoleEncoding,
		OutputPaths: []string{"stderr"},
	}
}

// Validate checks the level name, encoding and outputs.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.Encoding != ConsoleEncoding && l.Encoding != JSONEncoding {
		return fmt.Errorf("encoding %q: %w", l.Encoding, errors.ErrInvalidConfig)
	}
	if len(l.OutputPaths) == 0 {
		return fmt.Errorf("no output paths: %w", errors.ErrInvalidConfig)
	}
	return nil
}

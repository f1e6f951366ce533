package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lgbarn/leiserchess-go/internal/config"
	"github.com/lgbarn/leiserchess-go/internal/errors"
	"github.com/lgbarn/leiserchess-go/internal/testutil"
)

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	cfg := config.NewConfigBuilder().
		WithLogEncoding(config.JSONEncoding).
		WithLogOutput(path).
		Build()

	logger, err := New(cfg.Log)
	testutil.AssertNoError(t, err)

	logger.Info("action applied", zap.String(SessionKey, "abc"), zap.String(MoveKey, "a1R"))
	logger.Debug("below level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	testutil.AssertEqual(t, len(lines), 1)

	var entry map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	testutil.AssertEqual(t, entry["msg"], "action applied")
	testutil.AssertEqual(t, entry["level"], "info")
	testutil.AssertEqual(t, entry[SessionKey], "abc")
	testutil.AssertEqual(t, entry[MoveKey], "a1R")
}

func TestNew_DevelopmentConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	cfg := config.NewConfigBuilder().
		WithLogLevel("debug").
		WithDevelopmentLogging(true).
		WithLogOutput(path).
		Build()

	logger, err := New(cfg.Log)
	testutil.AssertNoError(t, err)

	logger.Debug("generated actions", zap.Int("count", 6))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), "DEBUG")
	testutil.AssertContains(t, string(data), "generated actions")
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"unknown level", config.LogConfig{Level: "chatty", Encoding: config.ConsoleEncoding, OutputPaths: []string{"stderr"}}},
		{"unknown encoding", config.LogConfig{Level: "info", Encoding: "yaml", OutputPaths: []string{"stderr"}}},
		{"no outputs", config.LogConfig{Level: "info", Encoding: config.JSONEncoding}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

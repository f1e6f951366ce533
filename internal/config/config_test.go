package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	lcerrors "github.com/lgbarn/leiserchess-go/internal/errors"
)

// TestSessionConfig_Defaults verifies SessionConfig has sensible defaults
func TestSessionConfig_Defaults(t *testing.T) {
	cfg := NewSessionConfig()

	if cfg.HistoryCapacity != 400 {
		t.Errorf("HistoryCapacity = %d, want 400", cfg.HistoryCapacity)
	}
	if cfg.ActionCapacity != 100 {
		t.Errorf("ActionCapacity = %d, want 100", cfg.ActionCapacity)
	}
	if !cfg.EnforceTurnOrder {
		t.Error("EnforceTurnOrder should be true by default")
	}
	if !cfg.TrackRepetitions {
		t.Error("TrackRepetitions should be true by default")
	}
}

// TestLogConfig_Defaults verifies LogConfig has sensible defaults
func TestLogConfig_Defaults(t *testing.T) {
	cfg := NewLogConfig()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Encoding != ConsoleEncoding {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, ConsoleEncoding)
	}
	if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
		t.Errorf("OutputPaths = %v, want [stderr]", cfg.OutputPaths)
	}
	if cfg.Development {
		t.Error("Development should be false by default")
	}
}

// TestConfig_Validate verifies validation of every section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"single board history", func(c *Config) { c.Session.HistoryCapacity = 1 }, false},
		{"zero history capacity", func(c *Config) { c.Session.HistoryCapacity = 0 }, true},
		{"negative action capacity", func(c *Config) { c.Session.ActionCapacity = -3 }, true},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"json encoding", func(c *Config) { c.Log.Encoding = JSONEncoding }, false},
		{"unknown encoding", func(c *Config) { c.Log.Encoding = "xml" }, true},
		{"no outputs", func(c *Config) { c.Log.OutputPaths = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, lcerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithHistoryCapacity(20).
		WithActionCapacity(10).
		WithTurnOrder(false).
		WithRepetitionTracking(false).
		WithLogLevel("debug").
		WithLogEncoding(JSONEncoding).
		WithLogOutput("stdout", "/tmp/leiserchess.log").
		WithDevelopmentLogging(true).
		Build()

	if cfg.Session.HistoryCapacity != 20 {
		t.Errorf("HistoryCapacity = %d, want 20", cfg.Session.HistoryCapacity)
	}
	if cfg.Session.ActionCapacity != 10 {
		t.Errorf("ActionCapacity = %d, want 10", cfg.Session.ActionCapacity)
	}
	if cfg.Session.EnforceTurnOrder {
		t.Error("EnforceTurnOrder should be false")
	}
	if cfg.Session.TrackRepetitions {
		t.Error("TrackRepetitions should be false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Encoding != JSONEncoding || !cfg.Log.Development {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if len(cfg.Log.OutputPaths) != 2 {
		t.Errorf("OutputPaths = %v, want 2 entries", cfg.Log.OutputPaths)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
session:
  history_capacity: 50
  enforce_turn_order: false
log:
  level: warn
  encoding: json
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Session.HistoryCapacity != 50 {
		t.Errorf("HistoryCapacity = %d, want 50", cfg.Session.HistoryCapacity)
	}
	if cfg.Session.ActionCapacity != DefaultActionCapacity {
		t.Errorf("ActionCapacity = %d, want default %d", cfg.Session.ActionCapacity, DefaultActionCapacity)
	}
	if cfg.Session.EnforceTurnOrder {
		t.Error("EnforceTurnOrder should be false")
	}
	if !cfg.Session.TrackRepetitions {
		t.Error("TrackRepetitions should keep its default")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Encoding != JSONEncoding {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if len(cfg.Log.OutputPaths) != 1 || cfg.Log.OutputPaths[0] != "stderr" {
		t.Errorf("OutputPaths = %v, want default", cfg.Log.OutputPaths)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "session: [unclosed"},
		{"wrong type", "session:\n  history_capacity: lots\n"},
		{"invalid value", "session:\n  action_capacity: 0\n"},
		{"invalid level", "log:\n  level: shout\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, lcerrors.ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leiserchess.yaml")
	if err := os.WriteFile(path, []byte("session:\n  action_capacity: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.ActionCapacity != 7 {
		t.Errorf("ActionCapacity = %d, want 7", cfg.Session.ActionCapacity)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

// Package config provides configuration for leiserchess-go game sessions and
// logging.
package config

import (
	"fmt"

	"github.com/lgbarn/leiserchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Session: *NewSessionConfig(),
		Log:     *NewLogConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Default session limits.
const (
	DefaultHistoryCapacity = 400
	DefaultActionCapacity  = 100
)

// SessionConfig holds settings for a game session.
type SessionConfig struct {
	// HistoryCapacity bounds the number of boards a session keeps, the
	// starting board included.
	HistoryCapacity int `yaml:"history_capacity"`

	// ActionCapacity bounds the number of actions a session accepts.
	ActionCapacity int `yaml:"action_capacity"`

	// EnforceTurnOrder rejects actions that move the side not on move.
	EnforceTurnOrder bool `yaml:"enforce_turn_order"`

	// TrackRepetitions counts position repeats.
	TrackRepetitions bool `yaml:"track_repetitions"`
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		HistoryCapacity:  DefaultHistoryCapacity,
		ActionCapacity:   DefaultActionCapacity,
		EnforceTurnOrder: true,
		TrackRepetitions: true,
	}
}

// Validate checks that the session limits are usable.
func (s *SessionConfig) Validate() error {
	if s.HistoryCapacity < 1 {
		return fmt.Errorf("history capacity %d must be positive: %w",
			s.HistoryCapacity, errors.ErrInvalidConfig)
	}
	if s.ActionCapacity < 1 {
		return fmt.Errorf("action capacity %d must be positive: %w",
			s.ActionCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithHistoryCapacity sets the number of boards a session keeps.
func (b *ConfigBuilder) WithHistoryCapacity(n int) *ConfigBuilder {
	b.cfg.Session.HistoryCapacity = n
	return b
}

// WithActionCapacity sets the number of actions a session accepts.
func (b *ConfigBuilder) WithActionCapacity(n int) *ConfigBuilder {
	b.cfg.Session.ActionCapacity = n
	return b
}

// WithTurnOrder controls whether sessions reject out-of-turn actions.
func (b *ConfigBuilder) WithTurnOrder(enforce bool) *ConfigBuilder {
	b.cfg.Session.EnforceTurnOrder = enforce
	return b
}

// WithRepetitionTracking controls whether sessions count repeated positions.
func (b *ConfigBuilder) WithRepetitionTracking(enabled bool) *ConfigBuilder {
	b.cfg.Session.TrackRepetitions = enabled
	return b
}

// WithLogLevel sets the zap level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogEncoding sets the zap encoding.
func (b *ConfigBuilder) WithLogEncoding(encoding string) *ConfigBuilder {
	b.cfg.Log.Encoding = encoding
	return b
}

// WithLogOutput sets the zap output paths.
func (b *ConfigBuilder) WithLogOutput(paths ...string) *ConfigBuilder {
	b.cfg.Log.OutputPaths = paths
	return b
}

// WithDevelopmentLogging switches the logger to zap's development defaults.
func (b *ConfigBuilder) WithDevelopmentLogging(enabled bool) *ConfigBuilder {
	b.cfg.Log.Development = enabled
	return b
}

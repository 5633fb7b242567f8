package statebuffer

import "github.com/sirupsen/logrus"

// ConfigBuilder provides a fluent API for constructing buffer configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder with sensible defaults.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithMaxBufferSize sets the retention capacity. Non-positive values are
// ignored at construction time, per the buffer's capacity contract.
// Example: builder.WithMaxBufferSize(400).
func (b *ConfigBuilder) WithMaxBufferSize(size int) *ConfigBuilder {
	b.config.MaxBufferSize = size

	return b
}

// WithKeepLastSensorHandle enables or disables the retention guard that keeps
// the sole state-bearing entry of every sensor alive during eviction.
// Enabled by default.
func (b *ConfigBuilder) WithKeepLastSensorHandle(enable bool) *ConfigBuilder {
	b.config.KeepLastSensorHandle = enable

	return b
}

// WithLogger sets the diagnostics logger.
// Example: builder.WithLogger(logrus.StandardLogger()).
func (b *ConfigBuilder) WithLogger(logger logrus.FieldLogger) *ConfigBuilder {
	b.config.Logger = logger

	return b
}

// WithColors enables or disables colored buffer dumps.
func (b *ConfigBuilder) WithColors(enable bool) *ConfigBuilder {
	b.config.Color.Enable = enable

	return b
}

// WithForceColors forces colored dumps even when the destination is not a
// terminal.
func (b *ConfigBuilder) WithForceColors(force bool) *ConfigBuilder {
	b.config.Color.ForceTTY = force

	return b
}

// WithMetadataColors overrides the metadata color palette used by Dump.
func (b *ConfigBuilder) WithMetadataColors(colors map[Metadata]string) *ConfigBuilder {
	b.config.Color.MetadataColors = colors

	return b
}

// Build creates a Config object from the builder.
func (b *ConfigBuilder) Build() Config {
	return b.config
}

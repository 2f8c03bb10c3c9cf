package config

import (
	"io"
	"time"
)

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

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithQueueSize sets the inbound command queue capacity per session.
func (b *ConfigBuilder) WithQueueSize(n int) *ConfigBuilder {
	b.cfg.Session.QueueSize = n
	return b
}

// WithSubscriberBuffer sets the snapshot buffer per subscriber.
func (b *ConfigBuilder) WithSubscriberBuffer(n int) *ConfigBuilder {
	b.cfg.Session.SubscriberBuffer = n
	return b
}

// WithMaxSessions caps the number of open sessions.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Session.MaxSessions = n
	return b
}

// WithAddr sets the listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the server read and write timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	return b
}

// WithMaxBodyBytes sets the request body limit.
func (b *ConfigBuilder) WithMaxBodyBytes(n int64) *ConfigBuilder {
	b.cfg.Server.MaxBodyBytes = n
	return b
}

// WithPerft sets the perft position and depth.
func (b *ConfigBuilder) WithPerft(fen string, depth int) *ConfigBuilder {
	b.cfg.Perft.FEN = fen
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithVerify enables comparison against the reference generator.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithWorkers sets the number of concurrent perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// Package config holds the settings for the chess server and the perft tool.
package config

import (
	"io"
	"os"
	"sync"

	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Lifecycle  = 1 // sessions opened and closed, server start and stop
	Commentary = 2 // every move, rejection and dropped snapshot
)

// Config holds all program configuration.
type Config struct {
	Verbosity int
	LogFile   io.Writer

	Session *SessionConfig
	Server  *ServerConfig
	Perft   *PerftConfig

	logOnce sync.Once
	logger  *Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: Lifecycle,
		LogFile:   os.Stderr,
		Session:   NewSessionConfig(),
		Server:    NewServerConfig(),
		Perft:     NewPerftConfig(),
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d outside 0-2", c.Verbosity)
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

package config

import (
	"fmt"

	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// SessionConfig holds settings for networked game sessions.
type SessionConfig struct {
	// QueueSize is the capacity of each session's inbound command queue.
	QueueSize int

	// SubscriberBuffer is the number of snapshots buffered per subscriber
	// before further snapshots are dropped for it.
	SubscriberBuffer int

	// MaxSessions caps concurrently open sessions; 0 means no limit.
	MaxSessions int
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		QueueSize:        16,
		SubscriberBuffer: 8,
	}
}

// Validate checks that the session configuration is valid.
func (s *SessionConfig) Validate() error {
	if s.QueueSize < 1 {
		return fmt.Errorf("session queue size %d must be positive: %w", s.QueueSize, errors.ErrInvalidConfig)
	}
	if s.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber buffer %d must be positive: %w", s.SubscriberBuffer, errors.ErrInvalidConfig)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max sessions %d is negative: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	return nil
}

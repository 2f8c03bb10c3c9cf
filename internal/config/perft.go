package config

import (
	"fmt"

	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// MaxPerftDepth bounds the search depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	FEN   string // empty means the standard start position
	Depth int

	// Divide prints per-move counts instead of a single total.
	Divide bool

	// Verify compares every count with the reference generator.
	Verify bool

	// Workers is the number of root moves counted concurrently.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

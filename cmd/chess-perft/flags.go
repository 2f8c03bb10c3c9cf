// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-replica-go/internal/config"
)

var (
	fen        = flag.String("fen", "", "Position in FEN (default: starting position)")
	depth      = flag.Int("depth", 3, "Search depth in plies")
	divide     = flag.Bool("divide", false, "Print counts per root move")
	verify     = flag.Bool("verify", false, "Compare with the reference move generator")
	workers    = flag.Int("workers", 1, "Root moves counted in parallel")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	quiet      = flag.Bool("s", false, "Silent mode: no log output")

	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Perft.FEN = *fen
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verify
	cfg.Perft.Workers = *workers
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

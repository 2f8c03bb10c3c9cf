// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chess-replica-go/internal/config"
)

var (
	// Listener
	addr         = flag.String("addr", "", "Listen address (default :8080)")
	readTimeout  = flag.Duration("read-timeout", 0, "HTTP read timeout (0 = default)")
	writeTimeout = flag.Duration("write-timeout", 0, "HTTP write timeout (0 = default)")
	maxBody      = flag.Int64("max-body", 0, "Maximum request body in bytes (0 = default)")

	// Sessions
	queueSize   = flag.Int("queue", 0, "Inbound command queue per session (0 = default)")
	subBuffer   = flag.Int("subscriber-buffer", 0, "Snapshots buffered per subscriber (0 = default)")
	maxSessions = flag.Int("max-sessions", 0, "Maximum open sessions (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write log to file instead of stderr")
	appendLog = flag.String("L", "", "Append log to file")
	verbosity = flag.Int("v", config.Lifecycle, "Verbosity: 0 silent, 1 lifecycle, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	shutdownGrace = flag.Duration("grace", 5*time.Second, "Graceful shutdown timeout")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyServerFlags(cfg)
	applySessionFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyServerFlags overrides listener settings that were given.
func applyServerFlags(cfg *config.Config) {
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *readTimeout > 0 {
		cfg.Server.ReadTimeout = *readTimeout
	}
	if *writeTimeout > 0 {
		cfg.Server.WriteTimeout = *writeTimeout
	}
	if *maxBody > 0 {
		cfg.Server.MaxBodyBytes = *maxBody
	}
}

// applySessionFlags overrides session settings that were given.
func applySessionFlags(cfg *config.Config) {
	if *queueSize > 0 {
		cfg.Session.QueueSize = *queueSize
	}
	if *subBuffer > 0 {
		cfg.Session.SubscriberBuffer = *subBuffer
	}
	cfg.Session.MaxSessions = *maxSessions
}

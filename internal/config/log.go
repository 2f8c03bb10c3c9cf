package config

import (
	"io"
	"log"
)

// Logger writes verbosity-gated lines. A nil *Logger discards everything.
type Logger struct {
	out       *log.Logger
	verbosity int
}

// NewLogger returns a Logger writing to w at the given verbosity.
func NewLogger(w io.Writer, verbosity int) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{out: log.New(w, "", log.LstdFlags), verbosity: verbosity}
}

// Logger returns the shared logger for LogFile. It is built on first use,
// so LogFile and Verbosity must be final by then.
func (c *Config) Logger() *Logger {
	c.logOnce.Do(func() {
		c.logger = NewLogger(c.LogFile, c.Verbosity)
	})
	return c.logger
}

// Printf logs when the configured verbosity is at least level.
func (l *Logger) Printf(level int, format string, args ...any) {
	if l == nil || l.verbosity < level {
		return
	}
	l.out.Printf(format, args...)
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level int) bool {
	return l != nil && l.verbosity >= level
}

package main

import (
	"testing"
	"time"

	"github.com/lgbarn/chess-replica-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreDuration(ptr *time.Duration, val time.Duration) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q; want :8080", cfg.Server.Addr)
	}
	if cfg.Session.QueueSize != 16 || cfg.Session.MaxSessions != 0 {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Verbosity != config.Lifecycle {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Lifecycle)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyServerFlags(t *testing.T) {
	defer saveRestoreString(addr, "127.0.0.1:9999")()
	defer saveRestoreDuration(readTimeout, 3*time.Second)()

	cfg := config.NewConfig()
	applyServerFlags(cfg)

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v; want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != config.NewServerConfig().WriteTimeout {
		t.Errorf("WriteTimeout changed without a flag: %v", cfg.Server.WriteTimeout)
	}
}

func TestApplySessionFlags(t *testing.T) {
	defer saveRestoreInt(queueSize, 4)()
	defer saveRestoreInt(subBuffer, 2)()
	defer saveRestoreInt(maxSessions, 50)()

	cfg := config.NewConfig()
	applySessionFlags(cfg)

	if cfg.Session.QueueSize != 4 || cfg.Session.SubscriberBuffer != 2 || cfg.Session.MaxSessions != 50 {
		t.Errorf("Session = %+v", cfg.Session)
	}
}

func TestApplyFlags_Quiet(t *testing.T) {
	defer saveRestoreInt(verbosity, config.Commentary)()
	defer saveRestoreBool(quiet, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Silent {
		t.Errorf("Verbosity = %d; want 0 when quiet", cfg.Verbosity)
	}
}

func TestApplyFlags_InvalidVerbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, 7)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted verbosity 7")
	}
}

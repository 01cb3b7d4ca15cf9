package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full server configuration. Values come from flags or the
// WHICHFLAG_* environment, with the zero-ish defaults below.
type Config struct {
	// Bind is the listen address, Port the listen port.
	Bind string
	Port int
	// PublicURL overrides the externally reachable base URL used for the QR
	// code. Empty means derive it from the incoming request.
	PublicURL string

	// Flag source endpoints. Empty selects each source's public default.
	SourceV2URL     string
	SourceV31URL    string
	MirrorURL       string
	SnapshotURL     string
	SourceTimeout   time.Duration

	// Round pacing.
	CountdownTicks int
	TickInterval   time.Duration
	RevealHold     time.Duration
	RestDelay      time.Duration

	// Results export.
	ExportEnabled bool
	ExportFile    string

	// Profile exposes net/http/pprof under /debug/pprof.
	Profile bool
	// Verbose drops the log level to debug.
	Verbose bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Bind:           "0.0.0.0",
		Port:           8080,
		SourceTimeout:  10 * time.Second,
		CountdownTicks: 1,
		TickInterval:   time.Second,
		RevealHold:     1200 * time.Millisecond,
		RestDelay:      2500 * time.Millisecond,
		ExportFile:     "exports/results.txt",
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be in range 1-65535", c.Port)
	}
	if c.SourceTimeout <= 0 {
		return errors.New("source timeout must be positive")
	}
	if c.CountdownTicks < 1 {
		return errors.New("countdown must be at least 1 tick")
	}
	if c.TickInterval <= 0 || c.RevealHold <= 0 || c.RestDelay <= 0 {
		return errors.New("round pacing durations must be positive")
	}
	if c.ExportEnabled && c.ExportFile == "" {
		return errors.New("export enabled without an export file")
	}
	return nil
}

// ListenAddr is the host:port the server binds.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

package game

import (
	"testing"
	"time"
)

var allPhases = []Phase{PhaseIdle, PhaseShuffling, PhaseRevealing, PhaseCountingDown, PhaseNameShown}

func TestPhaseTransitionTable(t *testing.T) {
	allowed := map[[2]Phase]bool{
		{PhaseIdle, PhaseShuffling}:         true,
		{PhaseShuffling, PhaseRevealing}:    true,
		{PhaseShuffling, PhaseIdle}:         true, // load failure
		{PhaseRevealing, PhaseCountingDown}: true,
		{PhaseCountingDown, PhaseNameShown}: true,
		{PhaseNameShown, PhaseShuffling}:    true, // next round without resting
		{PhaseNameShown, PhaseIdle}:         true, // automatic rest
	}
	for _, from := range allPhases {
		for _, to := range allPhases {
			want := allowed[[2]Phase{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestPhaseLocked(t *testing.T) {
	locked := map[Phase]bool{
		PhaseShuffling:    true,
		PhaseRevealing:    true,
		PhaseCountingDown: true,
	}
	for _, p := range allPhases {
		if got := p.Locked(); got != locked[p] {
			t.Errorf("%s.Locked() = %v, want %v", p, got, locked[p])
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.CountdownTicks != 1 {
		t.Errorf("default CountdownTicks = %d, want 1", cfg.CountdownTicks)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("default TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if cfg.RevealHold <= 0 || cfg.RestDelay <= 0 {
		t.Error("defaults should fill every timing field")
	}

	// Explicit values survive.
	cfg = Config{CountdownTicks: 5, TickInterval: 2 * time.Second}.withDefaults()
	if cfg.CountdownTicks != 5 || cfg.TickInterval != 2*time.Second {
		t.Errorf("explicit values were overwritten: %+v", cfg)
	}
}

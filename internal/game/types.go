package game

import (
	"time"

	"github.com/Yuter777/Which-flag-game/internal/countries"
)

// Phase is the round lifecycle state. A round moves strictly through
// Shuffling, Revealing, CountingDown and NameShown; Idle is the rest state
// between rounds.
type Phase string

const (
	PhaseIdle         Phase = "Idle"
	PhaseShuffling    Phase = "Shuffling"
	PhaseRevealing    Phase = "Revealing"
	PhaseCountingDown Phase = "CountingDown"
	PhaseNameShown    Phase = "NameShown"
)

// validTransitions lists every edge the round machine may take. Shuffling
// falls back to Idle when the flag set cannot be loaded; NameShown goes to
// Idle on the automatic rest or straight to Shuffling when the next round is
// started first.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:         {PhaseShuffling},
	PhaseShuffling:    {PhaseRevealing, PhaseIdle},
	PhaseRevealing:    {PhaseCountingDown},
	PhaseCountingDown: {PhaseNameShown},
	PhaseNameShown:    {PhaseShuffling, PhaseIdle},
}

func (p Phase) String() string { return string(p) }

// CanTransitionTo reports whether the machine may move from p to next.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range validTransitions[p] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Locked reports whether a round is in flight. While locked, further start
// requests are ignored; the lock releases at NameShown so the next round can
// begin while the name is still on screen.
func (p Phase) Locked() bool {
	switch p {
	case PhaseShuffling, PhaseRevealing, PhaseCountingDown:
		return true
	}
	return false
}

// RoundState is the full observable state of one session's round machine.
type RoundState struct {
	Phase Phase `json:"phase"`
	// Round counts started rounds, beginning at 1.
	Round int `json:"round"`
	// Selected is the flag in play from Revealing onward, nil in Idle and
	// Shuffling.
	Selected *countries.Entry `json:"selected,omitempty"`
	// RemainingTicks is the countdown position, 0 outside CountingDown.
	RemainingTicks int `json:"remainingTicks"`
}

// RoundRecord is one finished round as kept in the session history and the
// results export.
type RoundRecord struct {
	ID            string    `json:"id"`
	Index         int       `json:"index"`
	Name          string    `json:"name"`
	LocalizedName string    `json:"localizedName"`
	ImageURL      string    `json:"imageUrl"`
	ShownAt       time.Time `json:"shownAt"`
}

// Config carries the round timing knobs.
type Config struct {
	// CountdownTicks is how many guess-time ticks are shown. The final tick
	// elapses into NameShown without displaying zero.
	CountdownTicks int `json:"countdownTicks"`
	// TickInterval is the wall time per countdown tick.
	TickInterval time.Duration `json:"tickInterval"`
	// RevealHold is how long the revealed flag stays up before the countdown.
	RevealHold time.Duration `json:"revealHold"`
	// RestDelay is how long the name stays up before the machine returns to
	// Idle on its own.
	RestDelay time.Duration `json:"restDelay"`
}

// DefaultConfig returns the stock pacing: a single one-second guess tick.
func DefaultConfig() Config {
	return Config{
		CountdownTicks: 1,
		TickInterval:   time.Second,
		RevealHold:     1200 * time.Millisecond,
		RestDelay:      2500 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CountdownTicks < 1 {
		c.CountdownTicks = d.CountdownTicks
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.RevealHold <= 0 {
		c.RevealHold = d.RevealHold
	}
	if c.RestDelay <= 0 {
		c.RestDelay = d.RestDelay
	}
	return c
}

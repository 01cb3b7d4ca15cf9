package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Yuter777/Which-flag-game/internal/countries"
)

// EntrySource supplies the playable flag set. *countries.Catalog satisfies
// it; tests plug in fixed sets.
type EntrySource interface {
	Entries(ctx context.Context) ([]countries.Entry, error)
}

// Presenter receives the engine's output as a round plays out. Calls arrive
// from the round goroutine, one at a time, and are expected to be quick
// (an emit on a socket, an append in a test).
type Presenter interface {
	// PhaseChanged fires on every transition with the post-transition state.
	PhaseChanged(state RoundState)
	// ShuffleFrame fires once per shuffle step with the flag to flash.
	ShuffleFrame(imageURL string)
	// FlagRevealed fires when the round's flag is fixed on screen.
	FlagRevealed(entry countries.Entry)
	// CountdownTick fires with 1 as its last value; 0 is never shown.
	CountdownTick(remaining int)
	// NameRevealed fires at NameShown with the answer and its history record.
	NameRevealed(entry countries.Entry, record RoundRecord)
	// LoadFailed fires when no flag source could produce a playable set.
	LoadFailed(err error)
}

// Clock abstracts the engine's pacing so tests can run rounds instantly.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Shuffle cadence: a whole round of flag-flashing lasts 0.7 to 1.0 seconds
// spread over 10 to 15 frames, re-rolled per round.
const (
	shuffleMinSteps = 10
	shuffleMaxSteps = 15
	shuffleMinSpan  = 700 * time.Millisecond
	shuffleMaxSpan  = time.Second
)

// Engine runs one session's round machine. A round is driven by a single
// goroutine spawned by Start; the phase itself doubles as the re-entrancy
// lock, so a second Start while a round is in flight is refused until
// NameShown.
type Engine struct {
	// ID is the session identifier, assigned at creation.
	ID string

	source EntrySource
	cfg    Config
	pres   Presenter
	clock  Clock
	rng    *rand.Rand

	mu      sync.Mutex
	state   RoundState
	history []RoundRecord
}

// NewEngine creates an idle engine for one session.
func NewEngine(source EntrySource, cfg Config, pres Presenter) *Engine {
	return &Engine{
		ID:     uuid.NewString(),
		source: source,
		cfg:    cfg.withDefaults(),
		pres:   pres,
		clock:  realClock{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		state:  RoundState{Phase: PhaseIdle},
	}
}

// Start begins a round unless one is already in flight. It reports whether
// the request was accepted; a refused start has no observable effect. The
// context bounds the round's flag fetch and pacing sleeps.
func (e *Engine) Start(ctx context.Context) bool {
	if !e.claim() {
		log.Debug().Str("session", e.ID).Msg("round start ignored, round in flight")
		return false
	}
	go e.run(ctx)
	return true
}

// claim is the mutual-exclusion gate: it moves the machine into Shuffling,
// which locks out further starts, before any slow work begins. Selection and
// countdown state from the previous round are cleared here.
func (e *Engine) claim() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase.Locked() {
		return false
	}
	e.state.Round++
	e.state.Selected = nil
	e.state.RemainingTicks = 0
	e.advanceLocked(PhaseShuffling)
	return true
}

// run plays one full round. It must only be entered after a successful
// claim.
func (e *Engine) run(ctx context.Context) {
	e.pres.PhaseChanged(e.Snapshot())

	entries, err := e.source.Entries(ctx)
	if err == nil && len(entries) == 0 {
		err = countries.ErrNoUsableEntries
	}
	if err != nil {
		log.Warn().Str("session", e.ID).Err(err).Msg("round aborted, flags unavailable")
		e.pres.LoadFailed(err)
		e.toIdle()
		return
	}

	e.shuffle(ctx, entries)
	selected := e.reveal(ctx, entries)
	e.countdown(ctx)
	round := e.showName(selected)
	e.rest(ctx, round)
}

// shuffle flashes random flags for this round's cadence. The selected flag
// is not chosen yet; the flashes are pure show.
func (e *Engine) shuffle(ctx context.Context, entries []countries.Entry) {
	steps := shuffleMinSteps + e.rng.Intn(shuffleMaxSteps-shuffleMinSteps+1)
	span := shuffleMinSpan + time.Duration(e.rng.Int63n(int64(shuffleMaxSpan-shuffleMinSpan)+1))
	interval := span / time.Duration(steps)
	for i := 0; i < steps; i++ {
		e.pres.ShuffleFrame(entries[e.rng.Intn(len(entries))].ImageURL)
		if err := e.clock.Sleep(ctx, interval); err != nil {
			return
		}
	}
}

// reveal picks the round's flag, fixes it in the state and holds it on
// screen before the countdown starts.
func (e *Engine) reveal(ctx context.Context, entries []countries.Entry) countries.Entry {
	selected := entries[e.rng.Intn(len(entries))]

	e.mu.Lock()
	e.advanceLocked(PhaseRevealing)
	e.state.Selected = &selected
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.pres.PhaseChanged(snap)
	e.pres.FlagRevealed(selected)
	e.clock.Sleep(ctx, e.cfg.RevealHold)
	return selected
}

// countdown ticks the guess timer down. With the stock single tick the
// sequence is: show 1, wait one interval, move on. Zero is never displayed.
func (e *Engine) countdown(ctx context.Context) {
	e.mu.Lock()
	e.advanceLocked(PhaseCountingDown)
	e.state.RemainingTicks = e.cfg.CountdownTicks
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.pres.PhaseChanged(snap)

	for t := e.cfg.CountdownTicks; t > 0; t-- {
		e.pres.CountdownTick(t)
		e.clock.Sleep(ctx, e.cfg.TickInterval)
		e.mu.Lock()
		e.state.RemainingTicks = t - 1
		e.mu.Unlock()
	}
}

// showName reveals the answer, appends the history record and releases the
// round lock by entering NameShown. Returns the finished round's number.
func (e *Engine) showName(selected countries.Entry) int {
	rec := RoundRecord{
		ID:            uuid.NewString(),
		Name:          selected.Name,
		LocalizedName: selected.LocalizedName,
		ImageURL:      selected.ImageURL,
		ShownAt:       time.Now().UTC(),
	}

	e.mu.Lock()
	e.advanceLocked(PhaseNameShown)
	rec.Index = e.state.Round
	e.history = append(e.history, rec)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.pres.PhaseChanged(snap)
	e.pres.NameRevealed(selected, rec)

	log.Info().
		Str("session", e.ID).
		Int("round", rec.Index).
		Str("country", rec.Name).
		Msg("round finished")
	return rec.Index
}

// rest returns the machine to Idle after the name has been up for a while,
// unless a newer round has already claimed it.
func (e *Engine) rest(ctx context.Context, round int) {
	if err := e.clock.Sleep(ctx, e.cfg.RestDelay); err != nil {
		return
	}
	e.mu.Lock()
	if e.state.Phase != PhaseNameShown || e.state.Round != round {
		e.mu.Unlock()
		return
	}
	e.state.Selected = nil
	e.advanceLocked(PhaseIdle)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.pres.PhaseChanged(snap)
}

// toIdle is the failure exit from Shuffling.
func (e *Engine) toIdle() {
	e.mu.Lock()
	e.state.Selected = nil
	e.state.RemainingTicks = 0
	e.advanceLocked(PhaseIdle)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.pres.PhaseChanged(snap)
}

// advanceLocked moves the phase along a listed edge. The engine only ever
// drives itself through valid edges; an invalid request is a bug, logged and
// refused so the machine stays consistent.
func (e *Engine) advanceLocked(to Phase) {
	from := e.state.Phase
	if !from.CanTransitionTo(to) {
		log.Error().
			Str("session", e.ID).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("invalid phase transition refused")
		return
	}
	e.state.Phase = to
}

// Snapshot returns a copy of the current round state.
func (e *Engine) Snapshot() RoundState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() RoundState {
	snap := e.state
	if e.state.Selected != nil {
		selected := *e.state.Selected
		snap.Selected = &selected
	}
	return snap
}

// History returns the finished rounds, oldest first.
func (e *Engine) History() []RoundRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]RoundRecord, len(e.history))
	copy(out, e.history)
	return out
}

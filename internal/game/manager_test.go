package game

import (
	"errors"
	"testing"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(&staticSource{entries: testEntries}, DefaultConfig())

	a := m.Create(newRecorder())
	b := m.Create(newRecorder())
	if a.ID == "" || b.ID == "" {
		t.Fatal("session IDs should not be empty")
	}
	if a.ID == b.ID {
		t.Fatal("different sessions should have different IDs")
	}

	got, err := m.Get(a.ID)
	if err != nil {
		t.Fatalf("should be able to retrieve created session: %v", err)
	}
	if got != a {
		t.Fatal("Get returned a different engine")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Len())
	}

	ids := m.IDs()
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found[a.ID] || !found[b.ID] {
		t.Fatalf("IDs() = %v, missing a session", ids)
	}
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(&staticSource{entries: testEntries}, DefaultConfig())
	if _, err := m.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(&staticSource{entries: testEntries}, DefaultConfig())
	e := m.Create(newRecorder())

	m.Remove(e.ID)
	if _, err := m.Get(e.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("removed session still retrievable: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected 0 sessions after removal, got %d", m.Len())
	}

	// Removing an unknown ID must not panic or disturb anything.
	m.Remove("nope")
}

func TestSessionsRunIndependently(t *testing.T) {
	m := NewManager(&staticSource{entries: testEntries}, DefaultConfig())

	recA := newRecorder()
	a := m.Create(recA)
	a.clock = instantClock{}

	recB := newRecorder()
	b := m.Create(recB)

	runRound(t, a)

	if len(a.History()) != 1 {
		t.Fatalf("session A should have 1 round, got %d", len(a.History()))
	}
	if len(b.History()) != 0 {
		t.Fatal("session B should be untouched by A's round")
	}
	if got := b.Snapshot(); got.Phase != PhaseIdle || got.Round != 0 {
		t.Errorf("session B state changed: %+v", got)
	}
	if len(recB.events) != 0 {
		t.Errorf("session B presenter saw A's round: %v", recB.events)
	}
}

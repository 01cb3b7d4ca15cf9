package game

import (
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager tracks the live session engines, one per connected player. All
// engines share the flag source and timing config they are created with.
type Manager struct {
	mu       sync.RWMutex
	source   EntrySource
	cfg      Config
	sessions map[string]*Engine
}

func NewManager(source EntrySource, cfg Config) *Manager {
	return &Manager{
		source:   source,
		cfg:      cfg,
		sessions: make(map[string]*Engine),
	}
}

// Create registers a fresh idle engine wired to the given presenter and
// returns it. The engine's ID is the session ID.
func (m *Manager) Create(pres Presenter) *Engine {
	e := NewEngine(m.source, m.cfg, pres)
	m.mu.Lock()
	m.sessions[e.ID] = e
	m.mu.Unlock()
	return e
}

// Get looks a session up by ID.
func (m *Manager) Get(id string) (*Engine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e := m.sessions[id]
	if e == nil {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// Remove drops a session. Removing an unknown ID is a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// IDs returns the live session IDs in no particular order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		out = append(out, id)
	}
	return out
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

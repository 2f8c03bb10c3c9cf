package session

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-replica-go/internal/config"
	"github.com/lgbarn/chess-replica-go/internal/errors"
)

// Manager tracks open sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      *config.SessionConfig
	log      *config.Logger
}

// NewManager creates an empty manager.
func NewManager(cfg *config.SessionConfig, log *config.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		log:      log,
	}
}

// Create starts a new session.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		return nil, errors.Wrapf(errors.ErrSessionLimit, "%d open", len(m.sessions))
	}
	s := New(m.cfg, m.log)
	m.sessions[s.ID()] = s
	m.log.Printf(config.Lifecycle, "session %s opened", s.ID())
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "%q", id)
	}
	return s, nil
}

// Remove closes and forgets a session.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return errors.Wrapf(errors.ErrSessionNotFound, "%q", id)
	}
	s.Close()
	return nil
}

// IDs returns the open session ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.sessions)
	m.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := maps.Values(m.sessions)
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

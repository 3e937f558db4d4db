package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore keeps sessions in process. A zero ttl never expires them.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (m *memoryStore) Get(_ context.Context, scope string) (*Session, error) {
	m.mu.RLock()
	e, ok := m.entries[scope]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, scope)
		m.mu.Unlock()
		return nil, ErrNoSession
	}
	return e.session.Clone(), nil
}

func (m *memoryStore) Set(_ context.Context, scope string, s *Session) error {
	e := memoryEntry{session: s.Clone()}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[scope] = e
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Clear(_ context.Context, scope string) error {
	m.mu.Lock()
	delete(m.entries, scope)
	m.mu.Unlock()
	return nil
}

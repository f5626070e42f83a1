package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is a process-local Store used in tests and single-node
// setups. Sessions are deep-copied on the way in and out so callers
// never share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]*Session{}}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	return copySession(s), nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, s.ID)
		return nil
	}
	m.sessions[s.ID] = copySession(s)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func copySession(s *Session) *Session {
	values := make(map[string]json.RawMessage, len(s.Values))
	for k, v := range s.Values {
		values[k] = append(json.RawMessage(nil), v...)
	}
	return &Session{
		ID:        s.ID,
		Values:    values,
		ExpiresAt: s.ExpiresAt,
	}
}

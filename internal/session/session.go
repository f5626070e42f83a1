package session

import (
	"encoding/json"
	"fmt"
	"time"
)

// Session is the host-owned string-keyed mapping attached to each
// request. Values are stored as raw JSON so the session makes no
// assumptions about what callers keep in it; the auth core touches
// exactly one key ("facebook-auth").
type Session struct {
	ID        string                     `json:"id"`
	Values    map[string]json.RawMessage `json:"values"`
	ExpiresAt time.Time                  `json:"expires_at"`

	dirty bool
}

// New creates an empty session with a fresh cryptographically random id.
func New(ttl time.Duration) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		Values:    map[string]json.RawMessage{},
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// Get decodes the value stored under key into v. The first return is
// false when the key is absent.
func (s *Session) Get(key string, v any) (bool, error) {
	raw, ok := s.Values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("session: decode %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key, overwriting any previous value, and marks the
// session for persistence.
func (s *Session) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", key, err)
	}
	if s.Values == nil {
		s.Values = map[string]json.RawMessage{}
	}
	s.Values[key] = raw
	s.dirty = true
	return nil
}

// Delete removes key. Deleting an absent key does not dirty the session.
func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; !ok {
		return
	}
	delete(s.Values, key)
	s.dirty = true
}

// Dirty reports whether the session has unpersisted changes.
func (s *Session) Dirty() bool {
	return s.dirty
}

package results

import "sync"

// Sessions maps external session identifiers to their current result token.
// A session holds at most one live token; binding a new one invalidates the
// previous entry in the store.
type Sessions struct {
	mu    sync.RWMutex
	byID  map[string]string
	store *Store
}

// NewSessions creates a session binding table backed by the given store.
func NewSessions(store *Store) *Sessions {
	return &Sessions{
		byID:  make(map[string]string),
		store: store,
	}
}

// Bind associates token with sessionID, superseding and invalidating any
// prior token bound to that session.
func (s *Sessions) Bind(sessionID, token string) {
	s.mu.Lock()
	prior, had := s.byID[sessionID]
	s.byID[sessionID] = token
	s.mu.Unlock()

	if had && prior != token {
		s.store.Invalidate(prior)
	}
}

// TokenFor returns the token bound to sessionID, if any.
func (s *Sessions) TokenFor(sessionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.byID[sessionID]
	return token, ok
}

// Unbind removes the session's binding and invalidates its token.
func (s *Sessions) Unbind(sessionID string) {
	s.mu.Lock()
	token, had := s.byID[sessionID]
	delete(s.byID, sessionID)
	s.mu.Unlock()

	if had {
		s.store.Invalidate(token)
	}
}

// Package session manages in-memory bearer sessions for the single admin.
package session

import (
	"sync"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/id"
)

// Store is the session capability handed to services. Keeping it an
// interface lets the memory implementation be swapped for a cache or
// database without touching callers.
type Store interface {
	// Create generates an opaque token bound to the given username.
	Create(username string) (string, error)
	// Resolve looks up a session by token. Pure lookup, no side effects.
	Resolve(token string) (*domain.Session, bool)
	// Destroy removes a session. Destroying an unknown token is a no-op.
	Destroy(token string)
}

// MemoryStore is the default Store: a mutex-guarded map. Sessions have no
// expiry and do not survive a restart, which is acceptable for a
// single-admin deployment.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
	}
}

// Create implements Store. Every session is an admin session; there is
// only one role in this system.
func (s *MemoryStore) Create(username string) (string, error) {
	token, err := id.Token()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = &domain.Session{
		Token:    token,
		Username: username,
		IsAdmin:  true,
	}

	return token, nil
}

// Resolve implements Store.
func (s *MemoryStore) Resolve(token string) (*domain.Session, bool) {
	if token == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok
}

// Destroy implements Store.
func (s *MemoryStore) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

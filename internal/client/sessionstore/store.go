// Package sessionstore owns the durable representation of the session token.
//
// Contract:
//   - Token: returns the current token, "" when none is stored; absence is
//     not an error.
//   - SetToken: persists the token, overwriting any prior value.
//   - Clear: removes any stored token; clearing an empty store is a no-op.
//
// A token in the store is the client's only signal of "authenticated"; no
// expiry is tracked. The store is injected into the request gateway and the
// session provider so tests can substitute MemoryStore.
package sessionstore

import (
	"context"
	"sync"
)

// Store is the single source of truth for the session token.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in memory only. Used in tests and as a
// fallback when no profile directory is available.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

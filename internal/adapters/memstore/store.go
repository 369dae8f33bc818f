// Package memstore is an in-process session store for dev mode and
// tests. It mirrors the redisstore semantics, including the raw-bytes
// decode path, so malformed-record handling can be exercised.
package memstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/ports"
)

// Store holds the single identity record in memory.
type Store struct {
	mu     sync.Mutex
	data   []byte
	stored bool
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore creates an empty in-memory session store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Save(_ context.Context, ident auth.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.stored = true
	return nil
}

func (s *Store) Load(_ context.Context) (auth.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stored {
		return auth.Identity{}, ports.ErrNoSession
	}
	var ident auth.Identity
	if err := json.Unmarshal(s.data, &ident); err != nil {
		return auth.Identity{}, ports.ErrMalformedSession
	}
	return ident, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.stored = false
	return nil
}

// SeedRaw stores arbitrary bytes as the persisted record, bypassing
// Save's marshaling. Tests use it to simulate an externally corrupted
// record.
func (s *Store) SeedRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.stored = true
}

// Stored reports whether a record is currently persisted.
func (s *Store) Stored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored
}

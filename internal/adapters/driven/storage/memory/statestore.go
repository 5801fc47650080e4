// Package memory provides in-memory implementations of the driven
// store ports. Used as test fakes and as a last-resort fallback when
// the SQLite cache cannot be opened.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.StateStore.
type StateStore struct {
	mu      sync.RWMutex
	state   *domain.State
	saveErr error
	saves   int
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// Load retrieves the stored state, or domain.ErrNotFound.
func (s *StateStore) Load(_ context.Context) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, domain.ErrNotFound
	}
	return s.state.Clone(), nil
}

// Save stores a snapshot of the state.
func (s *StateStore) Save(_ context.Context, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.state = state.Clone()
	return nil
}

// Close is a no-op.
func (s *StateStore) Close() error {
	return nil
}

// Seed preloads the store with a state, as if persisted earlier.
func (s *StateStore) Seed(state *domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
}

// FailSaves makes subsequent Save calls return an error. Pass nil to
// restore normal behaviour.
func (s *StateStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// SaveCount reports how many Save calls were made.
func (s *StateStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// ErrSaveFailed is a convenience error for FailSaves in tests.
var ErrSaveFailed = errors.New("save failed")

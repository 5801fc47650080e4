package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
)

// Ensure MirrorStore implements the interface.
var _ driven.MirrorStore = (*MirrorStore)(nil)

// ErrWriteFailed is a convenience error for FailWrites in tests.
var ErrWriteFailed = errors.New("write failed")

// MirrorStore is an in-memory implementation of driven.MirrorStore.
type MirrorStore struct {
	mu       sync.RWMutex
	name     string
	state    *domain.State
	writeErr error
	writes   int
}

// NewMirrorStore creates an in-memory mirror with a display name.
// Seed with a state to model an existing non-empty file.
func NewMirrorStore(name string, seed *domain.State) *MirrorStore {
	m := &MirrorStore{name: name}
	if seed != nil {
		m.state = seed.Clone()
	}
	return m
}

// Read returns the mirrored state, or domain.ErrNotFound when empty.
func (m *MirrorStore) Read(_ context.Context) (*domain.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == nil {
		return nil, domain.ErrNotFound
	}
	return m.state.Clone(), nil
}

// Write overwrites the mirrored state.
func (m *MirrorStore) Write(_ context.Context, state *domain.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.state = state.Clone()
	return nil
}

// Name returns the display name.
func (m *MirrorStore) Name() string {
	return m.name
}

// Close is a no-op.
func (m *MirrorStore) Close() error {
	return nil
}

// FailWrites makes subsequent Write calls return an error. Pass nil
// to restore normal behaviour.
func (m *MirrorStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// State returns the last written state, or nil.
func (m *MirrorStore) State() *domain.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == nil {
		return nil
	}
	return m.state.Clone()
}

// WriteCount reports how many Write calls were made.
func (m *MirrorStore) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

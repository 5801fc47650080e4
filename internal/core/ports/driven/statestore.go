package driven

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// StateStore is the always-on local cache of the full CRM state.
// Backed by SQLite under a single fixed key.
//
// The store engine writes through after every mutation. Persistence is
// an effect of mutation, never a cause: a failed Save must not undo or
// block the in-memory change.
type StateStore interface {
	// Load retrieves the persisted state. Returns domain.ErrNotFound
	// when no prior state exists; an undecodable record is reported as
	// domain.ErrCorruptState and callers treat it the same way.
	Load(ctx context.Context) (*domain.State, error)

	// Save overwrites the persisted state with a full snapshot.
	Save(ctx context.Context, state *domain.State) error

	// Close releases resources.
	Close() error
}

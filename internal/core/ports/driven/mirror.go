package driven

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// MirrorStore is an attached external file holding a human-readable
// copy of the CRM state, independent of the cache layer.
//
// Every write replaces the whole file. Overlapping writes from rapid
// successive mutations are not queued; the last write to complete
// wins, which is acceptable for a single-user tool.
type MirrorStore interface {
	// Read decodes the full state from the file. An empty file returns
	// domain.ErrNotFound; an undecodable one domain.ErrCorruptState.
	Read(ctx context.Context) (*domain.State, error)

	// Write serialises the state and overwrites the file.
	Write(ctx context.Context, state *domain.State) error

	// Name returns the display name of the attached file.
	Name() string

	// Close detaches, releasing the handle and any watcher.
	Close() error
}

// MirrorEvent signals an out-of-band change to the attached file.
type MirrorEvent struct {
	// Name is the display name of the file that changed.
	Name string

	// Removed is true when the file was deleted or renamed away.
	Removed bool
}

// MirrorWatcher is an optional capability of a MirrorStore: it reports
// external modifications to the attached file so the engine can flag
// the mirror out of sync. Watching is best-effort.
type MirrorWatcher interface {
	// Events returns the channel external changes are delivered on.
	// The channel is closed when the store is closed.
	Events() <-chan MirrorEvent
}

// FilePicker abstracts the user-facing file selection flow for
// attaching a mirror. Outcomes follow the attach state machine:
//
//   - An existing file is chosen: Existing=true, its content takes
//     over the in-memory state wholesale.
//   - No existing file, but the user names a new one: Existing=false,
//     the current state becomes the file's initial content.
//   - The user aborts: domain.ErrAborted, nothing changes.
type FilePicker interface {
	Pick(ctx context.Context) (PickResult, error)
}

// PickResult is the outcome of a completed file selection.
type PickResult struct {
	// Path is the chosen file path.
	Path string

	// Existing is true when the file already had content to take over.
	Existing bool
}

package driving

import "context"

// MirrorStatus is the user-visible sync state: a boolean+filename
// pair, nothing more.
type MirrorStatus struct {
	// Attached is true when a mirror file is connected.
	Attached bool

	// Synced is true when the most recent mirror write succeeded.
	// Always false while unattached.
	Synced bool

	// FileName is the display name of the attached file, or empty.
	FileName string
}

// MirrorService manages the optional external file mirror.
//
// The mirror is a trailing copy, never a gate: a failed write flips
// the synced flag but does not detach, roll back, or surface from the
// mutation path.
type MirrorService interface {
	// Connect runs the file selection flow and attaches the result.
	// Picking an existing non-empty file replaces the in-memory state
	// with the file's content wholesale. Re-connecting while attached
	// switches files. An explicit abort returns domain.ErrAborted and
	// leaves everything as it was.
	Connect(ctx context.Context) error

	// Disconnect detaches the mirror. The cache layer keeps working.
	Disconnect() error

	// Status reports the current attach/sync state.
	Status() MirrorStatus
}

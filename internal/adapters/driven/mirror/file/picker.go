package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
)

// Ensure Picker implements the interface.
var _ driven.FilePicker = (*Picker)(nil)

// Picker resolves a caller-supplied path into a pick result. It is
// the CLI stand-in for a graphical file dialog: the attach state
// machine is the same, only the selection mechanism differs.
//
//   - Path names an existing non-empty file: its content takes over.
//   - Path names a missing or empty file: fall through to the
//     create-new flow, seeding from the current state.
//   - Empty path: the user abandoned selection, domain.ErrAborted.
type Picker struct {
	mu   sync.Mutex
	path string
}

// NewPicker creates a picker for the given path.
func NewPicker(path string) *Picker {
	return &Picker{path: path}
}

// SetPath changes the path the next Pick resolves. An empty path makes
// Pick report an abort.
func (p *Picker) SetPath(path string) {
	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
}

// Pick resolves the path into a PickResult.
func (p *Picker) Pick(_ context.Context) (driven.PickResult, error) {
	p.mu.Lock()
	path := p.path
	p.mu.Unlock()

	if path == "" {
		return driven.PickResult{}, domain.ErrAborted
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return driven.PickResult{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	case err == nil:
		return driven.PickResult{Path: path, Existing: info.Size() > 0}, nil
	case os.IsNotExist(err):
		return driven.PickResult{Path: path, Existing: false}, nil
	default:
		return driven.PickResult{}, fmt.Errorf("inspecting %s: %w", path, err)
	}
}

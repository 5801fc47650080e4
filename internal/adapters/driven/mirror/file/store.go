package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// selfWriteWindow is how long after one of our own writes a change
// event on the file is attributed to us rather than an outside editor.
const selfWriteWindow = 500 * time.Millisecond

// Ensure Store implements the interfaces.
var (
	_ driven.MirrorStore   = (*Store)(nil)
	_ driven.MirrorWatcher = (*Store)(nil)
)

// Store mirrors the CRM state to a single file on disk.
type Store struct {
	path string

	mu        sync.Mutex
	lastWrite time.Time

	watcher *fsnotify.Watcher
	events  chan driven.MirrorEvent
	closed  chan struct{}
}

// NewStore attaches to the file at path, creating it (and its parent
// directory) if needed. The parent directory is watched so external
// edits to the file can be reported.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating mirror directory: %w", err)
	}

	// Touch the file so attach always yields a handle we can reopen.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening mirror file: %w", err)
	}
	f.Close()

	s := &Store{
		path:   path,
		events: make(chan driven.MirrorEvent, 8),
		closed: make(chan struct{}),
	}

	// Watch the directory, not the file: editors that replace-by-rename
	// would otherwise silently drop the watch.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("mirror watcher unavailable: %v", err)
		close(s.events)
		return s, nil
	}
	if err := watcher.Add(dir); err != nil {
		logger.Warn("mirror watch failed for %s: %v", dir, err)
		watcher.Close()
		close(s.events)
		return s, nil
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Read decodes the full state from the file. An empty file returns
// domain.ErrNotFound; an undecodable one domain.ErrCorruptState.
func (s *Store) Read(_ context.Context) (*domain.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading mirror file: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrNotFound
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}
	return &state, nil
}

// Write serialises the state, human-readable, and replaces the file.
// The write goes through a temp file and rename so a crash mid-write
// never leaves a half-written mirror.
func (s *Store) Write(_ context.Context, state *domain.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	s.mu.Lock()
	s.lastWrite = time.Now()
	s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing mirror file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing mirror file: %w", err)
	}
	return nil
}

// Name returns the file's base name for display.
func (s *Store) Name() string {
	return filepath.Base(s.path)
}

// Path returns the full file path.
func (s *Store) Path() string {
	return s.path
}

// Events returns the external-change channel. Closed on Close, or
// immediately when no watcher could be started.
func (s *Store) Events() <-chan driven.MirrorEvent {
	return s.events
}

// Close stops the watcher and releases the store.
func (s *Store) Close() error {
	close(s.closed)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// watch filters directory events down to out-of-band changes to our
// file and forwards them as MirrorEvents.
func (s *Store) watch() {
	defer close(s.events)
	for {
		select {
		case <-s.closed:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Our own replace-by-rename surfaces as Write/Create on
			// the path; attribute those to ourselves inside the window.
			removed := ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0
			if !removed && s.isSelfWrite() {
				continue
			}
			select {
			case s.events <- driven.MirrorEvent{Name: s.Name(), Removed: removed}:
			case <-s.closed:
				return
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("mirror watcher error: %v", err)
		}
	}
}

func (s *Store) isSelfWrite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastWrite) < selfWriteWindow
}

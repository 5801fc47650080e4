package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// Ensure MirrorService implements the interface.
var _ driving.MirrorService = (*MirrorService)(nil)

// defaultWriteRate throttles mirror rewrites to a few per second.
// Rapid mutation bursts coalesce into the latest snapshot; the file
// always converges to the newest state.
var defaultWriteRate = rate.Limit(4)

// MirrorOpener creates a MirrorStore for a picked path.
type MirrorOpener func(path string) (driven.MirrorStore, error)

// MirrorService manages the optional external file mirror. It
// subscribes to the store engine and trails every published state
// with an asynchronous full-file rewrite. The mirror is never a gate:
// a failed write only flips the synced flag.
type MirrorService struct {
	engine   driving.CRMService
	picker   driven.FilePicker
	open     MirrorOpener
	settings driving.SettingsService

	mu       sync.Mutex
	store    driven.MirrorStore
	synced   bool
	pending  *domain.State
	kick     chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}
	unsubFn  func()
	limit    rate.Limit
}

// NewMirrorService wires the mirror to the engine. settings may be nil
// when nothing should be remembered between runs.
func NewMirrorService(engine driving.CRMService, picker driven.FilePicker, open MirrorOpener, settings driving.SettingsService) *MirrorService {
	s := &MirrorService{
		engine:   engine,
		picker:   picker,
		open:     open,
		settings: settings,
		limit:    defaultWriteRate,
	}
	s.unsubFn = engine.Subscribe(s.onState)
	return s
}

// Connect runs the file selection flow and attaches the result.
// Re-connecting while attached switches files. An explicit abort
// returns domain.ErrAborted with everything left as it was.
func (s *MirrorService) Connect(ctx context.Context) error {
	result, err := s.picker.Pick(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAborted) {
			return domain.ErrAborted
		}
		return fmt.Errorf("pick mirror file: %w", err)
	}

	store, err := s.open(result.Path)
	if err != nil {
		return fmt.Errorf("open mirror file: %w", err)
	}

	// When switching files, flush and drop the old attachment first.
	// Adopting the new file's content publishes a state; the old file
	// must never receive that write.
	s.detach()

	if result.Existing {
		state, err := store.Read(ctx)
		switch {
		case err == nil:
			// Full state takeover: the file's content replaces the
			// in-memory state, not a merge.
			if err := s.engine.ReplaceState(ctx, state); err != nil {
				store.Close()
				return fmt.Errorf("adopt mirror state: %w", err)
			}
		case errors.Is(err, domain.ErrNotFound):
			// Empty file: seed it from the current state below.
		default:
			store.Close()
			return fmt.Errorf("read mirror file: %w", err)
		}
	}

	s.attach(store)

	// Prime the file so a fresh attach is immediately consistent.
	if err := store.Write(ctx, s.engine.State()); err != nil {
		logger.Warn("initial mirror write failed: %v", err)
		s.setSynced(false)
	} else {
		s.setSynced(true)
	}

	if s.settings != nil {
		if err := s.settings.SetMirrorPath(result.Path); err != nil {
			logger.Warn("remember mirror path: %v", err)
		}
	}

	_ = s.engine.AddNotification(ctx, "Local Sync Active",
		fmt.Sprintf("Connected to %s.", store.Name()), domain.NotificationSuccess)
	return nil
}

// Attach connects a ready-made store directly, bypassing the picker.
// Used to re-attach the remembered mirror at startup.
func (s *MirrorService) Attach(ctx context.Context, store driven.MirrorStore) error {
	s.detach()

	state, err := store.Read(ctx)
	switch {
	case err == nil:
		if err := s.engine.ReplaceState(ctx, state); err != nil {
			return fmt.Errorf("adopt mirror state: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return fmt.Errorf("read mirror file: %w", err)
	}

	s.attach(store)
	if err := store.Write(ctx, s.engine.State()); err != nil {
		s.setSynced(false)
	} else {
		s.setSynced(true)
	}
	return nil
}

// attach swaps in the store and starts the writer loop and watcher,
// tearing down any previous attachment first.
func (s *MirrorService) attach(store driven.MirrorStore) {
	s.detach()

	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.store = store
	s.pending = nil
	s.kick = make(chan struct{}, 1)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.writeLoop(ctx, store, s.kick, s.done)
	if w, ok := store.(driven.MirrorWatcher); ok {
		go s.watchLoop(ctx, w)
	}
}

// Disconnect detaches the mirror. The cache layer keeps working.
func (s *MirrorService) Disconnect() error {
	s.detach()
	if s.settings != nil {
		if err := s.settings.ClearMirrorPath(); err != nil {
			logger.Warn("forget mirror path: %v", err)
		}
	}
	return nil
}

func (s *MirrorService) detach() {
	s.mu.Lock()
	store := s.store
	cancel := s.cancel
	done := s.done
	pending := s.pending
	s.store = nil
	s.cancel = nil
	s.done = nil
	s.synced = false
	s.pending = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	if store != nil {
		// Flush whatever the throttled loop had not written yet so the
		// file still converges to the latest state.
		if pending != nil {
			if err := store.Write(context.Background(), pending); err != nil {
				logger.Warn("final mirror write failed: %v", err)
			}
		}
		store.Close()
	}
}

// Close stops the mirror and unsubscribes from the engine.
func (s *MirrorService) Close() error {
	s.detach()
	if s.unsubFn != nil {
		s.unsubFn()
		s.unsubFn = nil
	}
	return nil
}

// Status reports the boolean+filename pair the UI displays.
func (s *MirrorService) Status() driving.MirrorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := driving.MirrorStatus{}
	if s.store != nil {
		st.Attached = true
		st.Synced = s.synced
		st.FileName = s.store.Name()
	}
	return st
}

// onState receives every published mutation. The snapshot is parked as
// pending and the writer loop is kicked; the caller returns at once.
func (s *MirrorService) onState(state *domain.State) {
	s.mu.Lock()
	if s.store == nil {
		s.mu.Unlock()
		return
	}
	s.pending = state
	kick := s.kick
	s.mu.Unlock()

	select {
	case kick <- struct{}{}:
	default:
	}
}

// writeLoop drains pending snapshots, throttled so mutation bursts
// coalesce. Only the latest snapshot is written; intermediate states
// are skipped, preserving convergence to the newest.
func (s *MirrorService) writeLoop(ctx context.Context, store driven.MirrorStore, kick <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	limiter := rate.NewLimiter(s.limit, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-kick:
		}

		if err := limiter.Wait(ctx); err != nil {
			return
		}

		s.mu.Lock()
		state := s.pending
		s.pending = nil
		s.mu.Unlock()
		if state == nil {
			continue
		}

		if err := store.Write(ctx, state); err != nil {
			logger.Warn("mirror write failed: %v", err)
			s.setSynced(false)
			continue
		}
		s.setSynced(true)
	}
}

// watchLoop flags the mirror out of sync when something else touches
// the attached file. Best-effort; the attachment itself survives.
func (s *MirrorService) watchLoop(ctx context.Context, w driven.MirrorWatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events():
			if !ok {
				return
			}
			s.setSynced(false)
			msg := fmt.Sprintf("%s was modified outside Nexus.", ev.Name)
			if ev.Removed {
				msg = fmt.Sprintf("%s was removed or renamed.", ev.Name)
			}
			_ = s.engine.AddNotification(ctx, "Mirror Out of Sync", msg, domain.NotificationWarning)
		}
	}
}

func (s *MirrorService) setSynced(v bool) {
	s.mu.Lock()
	if s.store != nil {
		s.synced = v
	}
	s.mu.Unlock()
}


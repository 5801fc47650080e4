package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// Ensure CRMService implements the interface.
var _ driving.CRMService = (*CRMService)(nil)

// CRMService is the store engine: it owns the in-memory state and is
// its sole mutator. Every mutation clones the state, applies the
// change, swaps the held pointer, notifies subscribers, and writes
// through to the cache store. Cache failures are logged, never
// propagated: persistence is an effect of mutation, not a cause.
type CRMService struct {
	cache driven.StateStore

	mu      sync.RWMutex
	state   *domain.State
	subs    map[int]func(*domain.State)
	nextSub int

	now   func() time.Time
	newID func() string
}

// CRMOption customises a CRMService.
type CRMOption func(*CRMService)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) CRMOption {
	return func(s *CRMService) { s.now = now }
}

// WithIDGenerator overrides ID generation. Used in tests.
func WithIDGenerator(gen func() string) CRMOption {
	return func(s *CRMService) { s.newID = gen }
}

// NewCRMService loads the initial state from the cache store. When
// nothing is stored, or the stored record cannot be decoded, it seeds
// the default state; a corrupt cache is treated identically to an
// empty one.
func NewCRMService(ctx context.Context, cache driven.StateStore, opts ...CRMOption) *CRMService {
	s := &CRMService{
		cache: cache,
		subs:  make(map[int]func(*domain.State)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	st, err := cache.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("cache load failed, seeding defaults: %v", err)
		}
		st = domain.DefaultState(s.now())
		if saveErr := cache.Save(ctx, st); saveErr != nil {
			logger.Warn("cache seed save failed: %v", saveErr)
		}
	}
	s.state = st
	return s
}

// State returns a deep-copy snapshot of the current state.
func (s *CRMService) State() *domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn to run after every published mutation.
// Subscribers are invoked synchronously, in registration order, with
// a private snapshot. The returned function unsubscribes.
func (s *CRMService) Subscribe(fn func(*domain.State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate clones the state, applies fn to the clone, and publishes the
// result when fn reports a change. Publication order matches mutation
// order; the lock is released before subscribers run.
func (s *CRMService) mutate(ctx context.Context, fn func(st *domain.State) bool) {
	s.mu.Lock()
	next := s.state.Clone()
	if !fn(next) {
		s.mu.Unlock()
		return
	}
	s.state = next

	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(*domain.State), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next.Clone())
	}

	if err := s.cache.Save(ctx, next); err != nil {
		logger.Warn("cache save failed: %v", err)
	}
}

// pushNotification prepends a notification and enforces the cap.
func (s *CRMService) pushNotification(st *domain.State, title, message string, typ domain.NotificationType) {
	n := domain.Notification{
		ID:        s.newID(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: s.now(),
	}
	st.Notifications = append([]domain.Notification{n}, st.Notifications...)
	if len(st.Notifications) > domain.MaxNotifications {
		st.Notifications = st.Notifications[:domain.MaxNotifications]
	}
}

// AddLead prepends a new lead and emits an info notification naming
// it. An empty name is accepted; gating input is the caller's job.
func (s *CRMService) AddLead(ctx context.Context, data driving.NewLead) (domain.Lead, error) {
	now := s.now()
	lead := domain.Lead{
		ID:           s.newID(),
		Name:         data.Name,
		Company:      data.Company,
		Email:        data.Email,
		Phone:        data.Phone,
		LinkedInURL:  data.LinkedInURL,
		Avatar:       data.Avatar,
		Value:        data.Value,
		Stage:        data.Stage,
		Source:       data.Source,
		Notes:        data.Notes,
		CreatedAt:    now,
		LastActivity: now,
		Interactions: []domain.Interaction{},
		Tasks:        []domain.Task{},
	}
	if lead.Stage == "" {
		lead.Stage = domain.StageLead
	}
	if lead.Source == "" {
		lead.Source = domain.SourceManual
	}

	s.mutate(ctx, func(st *domain.State) bool {
		st.Leads = append([]domain.Lead{lead}, st.Leads...)
		s.pushNotification(st, "Lead Added",
			fmt.Sprintf("%s from %s was added.", lead.Name, lead.Company),
			domain.NotificationInfo)
		return true
	})
	return lead, nil
}

// UpdateLead merges the patch over the lead and refreshes
// LastActivity, even for an empty patch. Missing IDs are a no-op.
func (s *CRMService) UpdateLead(ctx context.Context, id string, patch domain.LeadPatch) error {
	s.mutate(ctx, func(st *domain.State) bool {
		l := st.FindLead(id)
		if l == nil {
			return false
		}
		patch.Apply(l)
		l.LastActivity = s.now()
		return true
	})
	return nil
}

// DeleteLead removes the lead. Missing IDs are a no-op, and
// notifications that mention the lead stay as they are.
func (s *CRMService) DeleteLead(ctx context.Context, id string) error {
	s.mutate(ctx, func(st *domain.State) bool {
		for i := range st.Leads {
			if st.Leads[i].ID == id {
				st.Leads = append(st.Leads[:i], st.Leads[i+1:]...)
				return true
			}
		}
		return false
	})
	return nil
}

// AddInteraction logs a contact event under the lead, newest first,
// and bumps the lead's recency. Empty content is dropped silently.
func (s *CRMService) AddInteraction(ctx context.Context, leadID string, in driving.NewInteraction) error {
	if in.Content == "" {
		return nil
	}
	s.mutate(ctx, func(st *domain.State) bool {
		l := st.FindLead(leadID)
		if l == nil {
			return false
		}
		now := s.now()
		l.Interactions = append([]domain.Interaction{{
			ID:        s.newID(),
			Type:      in.Type,
			Content:   in.Content,
			Timestamp: now,
		}}, l.Interactions...)
		l.LastActivity = now
		return true
	})
	return nil
}

// AddTask adds an action item under the lead, newest first, and bumps
// the lead's recency. An empty title is dropped silently.
func (s *CRMService) AddTask(ctx context.Context, leadID string, t driving.NewTask) error {
	if t.Title == "" {
		return nil
	}
	target, err := parseTargetDate(t.TargetDate, s.now())
	if err != nil {
		return fmt.Errorf("parse target date: %w", err)
	}
	s.mutate(ctx, func(st *domain.State) bool {
		l := st.FindLead(leadID)
		if l == nil {
			return false
		}
		now := s.now()
		task := domain.Task{
			ID:         s.newID(),
			Title:      t.Title,
			Type:       t.Type,
			Priority:   t.Priority,
			TargetDate: target,
			CreatedAt:  now,
		}
		if task.Type == "" {
			task.Type = domain.TaskFollowUp
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityMedium
		}
		l.Tasks = append([]domain.Task{task}, l.Tasks...)
		l.LastActivity = now
		return true
	})
	return nil
}

// parseTargetDate accepts a plain date or RFC3339 timestamp. Empty
// defaults to tomorrow, matching the add-task form's prefill.
func parseTargetDate(v string, now time.Time) (time.Time, error) {
	if v == "" {
		return now.Add(24 * time.Hour), nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidInput, v)
	}
	return t, nil
}

// ToggleTask flips the task's completed flag. Completing stamps
// CompletedDate; reverting clears it. The lead's recency is bumped.
func (s *CRMService) ToggleTask(ctx context.Context, leadID, taskID string) error {
	s.mutate(ctx, func(st *domain.State) bool {
		l := st.FindLead(leadID)
		if l == nil {
			return false
		}
		for i := range l.Tasks {
			if l.Tasks[i].ID != taskID {
				continue
			}
			now := s.now()
			l.Tasks[i].Completed = !l.Tasks[i].Completed
			if l.Tasks[i].Completed {
				done := now
				l.Tasks[i].CompletedDate = &done
			} else {
				l.Tasks[i].CompletedDate = nil
			}
			l.LastActivity = now
			return true
		}
		return false
	})
	return nil
}

// AddUser appends a profile and emits a success notification.
func (s *CRMService) AddUser(ctx context.Context, name, role string) (domain.User, error) {
	u := domain.User{ID: s.newID(), Name: name, Role: role}
	s.mutate(ctx, func(st *domain.State) bool {
		st.Users = append(st.Users, u)
		s.pushNotification(st, "User Added",
			fmt.Sprintf("%s joined the workspace.", u.Name),
			domain.NotificationSuccess)
		return true
	})
	return u, nil
}

// SelectUser makes the user with the given ID the current profile.
// The profile is a session switch only; lead visibility is unchanged.
func (s *CRMService) SelectUser(ctx context.Context, id string) error {
	s.mutate(ctx, func(st *domain.State) bool {
		for i := range st.Users {
			if st.Users[i].ID == id {
				u := st.Users[i]
				st.CurrentUser = &u
				return true
			}
		}
		return false
	})
	return nil
}

// Logout clears the current profile.
func (s *CRMService) Logout(ctx context.Context) error {
	s.mutate(ctx, func(st *domain.State) bool {
		if st.CurrentUser == nil {
			return false
		}
		st.CurrentUser = nil
		return true
	})
	return nil
}

// AddNotification prepends a notification, evicting the oldest beyond
// the cap.
func (s *CRMService) AddNotification(ctx context.Context, title, message string, typ domain.NotificationType) error {
	s.mutate(ctx, func(st *domain.State) bool {
		s.pushNotification(st, title, message, typ)
		return true
	})
	return nil
}

// MarkNotificationRead marks the notification as seen. Already-read or
// missing notifications are a no-op; there is no way back to unread.
func (s *CRMService) MarkNotificationRead(ctx context.Context, id string) error {
	s.mutate(ctx, func(st *domain.State) bool {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id && !st.Notifications[i].Read {
				st.Notifications[i].Read = true
				return true
			}
		}
		return false
	})
	return nil
}

// ReplaceState swaps in a whole new state. The mirror attach flow uses
// this when an existing file's content takes over; nothing is merged.
func (s *CRMService) ReplaceState(ctx context.Context, state *domain.State) error {
	if state == nil {
		return domain.ErrInvalidInput
	}
	incoming := state.Clone()
	s.mutate(ctx, func(st *domain.State) bool {
		*st = *incoming
		return true
	})
	return nil
}

package driving

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// NewLead carries the caller-supplied fields for AddLead. ID and the
// timestamps are assigned by the engine.
type NewLead struct {
	Name        string
	Company     string
	Email       string
	Phone       string
	LinkedInURL string
	Avatar      string
	Value       float64
	Stage       domain.Stage
	Source      domain.LeadSource
	Notes       string
}

// NewInteraction carries the caller-supplied fields for AddInteraction.
type NewInteraction struct {
	Type    domain.InteractionType
	Content string
}

// NewTask carries the caller-supplied fields for AddTask.
type NewTask struct {
	Title      string
	Type       domain.TaskType
	Priority   domain.TaskPriority
	TargetDate string // date form "2006-01-02" or RFC3339
}

// CRMService is the store engine: the sole mutator of the CRM state.
//
// Every operation mutates a fresh copy of the state, publishes it to
// subscribers, and schedules persistence. Operations targeting an
// absent ID are silent no-ops: a stale reference is benign, not an
// error. Trivial validation (e.g. a usable lead name) is the caller's
// job; the engine accepts what it is given.
type CRMService interface {
	// State returns a deep-copy snapshot of the current state.
	State() *domain.State

	// Subscribe registers fn to run after every published mutation.
	// The returned function unsubscribes.
	Subscribe(fn func(*domain.State)) func()

	// AddLead prepends a new lead and emits an info notification.
	AddLead(ctx context.Context, data NewLead) (domain.Lead, error)

	// UpdateLead merges the patch over the lead and refreshes its
	// LastActivity, even when the patch changes nothing.
	UpdateLead(ctx context.Context, id string, patch domain.LeadPatch) error

	// DeleteLead removes the lead. Notifications that mention it are
	// not retracted.
	DeleteLead(ctx context.Context, id string) error

	// AddInteraction logs a contact event under the lead.
	// Empty content is dropped without error.
	AddInteraction(ctx context.Context, leadID string, in NewInteraction) error

	// AddTask adds an action item under the lead.
	// An empty title is dropped without error.
	AddTask(ctx context.Context, leadID string, t NewTask) error

	// ToggleTask flips the task's completed flag, stamping
	// CompletedDate on completion and clearing it on revert.
	ToggleTask(ctx context.Context, leadID, taskID string) error

	// AddUser appends a profile and emits a success notification.
	AddUser(ctx context.Context, name, role string) (domain.User, error)

	// SelectUser makes the user with the given ID the current profile.
	SelectUser(ctx context.Context, id string) error

	// Logout clears the current profile.
	Logout(ctx context.Context) error

	// AddNotification prepends a notification, evicting beyond the cap.
	AddNotification(ctx context.Context, title, message string, typ domain.NotificationType) error

	// MarkNotificationRead marks the notification as seen.
	MarkNotificationRead(ctx context.Context, id string) error

	// ReplaceState swaps in a whole new state, discarding the current
	// one. Used by the mirror attach flow when an existing file's
	// content takes over; this is a replacement, never a merge.
	ReplaceState(ctx context.Context, state *domain.State) error
}

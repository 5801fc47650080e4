package domain

import "time"

// MaxNotifications caps the notification sequence. Oldest entries are
// evicted silently on overflow.
const MaxNotifications = 20

// NotificationType classifies a notification for display.
type NotificationType string

// Recognised notification types.
const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is an in-app notice shown to the user. Once read it
// cannot be marked unread again.
type Notification struct {
	// ID is the unique identifier.
	ID string `json:"id"`

	// Title is the short headline.
	Title string `json:"title"`

	// Message is the notice body.
	Message string `json:"message"`

	// Type classifies the notice for display.
	Type NotificationType `json:"type"`

	// Timestamp is the creation time. Immutable.
	Timestamp time.Time `json:"timestamp"`

	// Read marks the notice as seen.
	Read bool `json:"read"`
}

package domain

import "time"

// State is the root aggregate of all persisted CRM data. A single
// instance exists per process, owned and mutated only by the store
// engine; everything else sees snapshots.
type State struct {
	// Leads is ordered newest-first by insertion.
	Leads []Lead `json:"leads"`

	// Notifications is ordered newest-first, capped at MaxNotifications.
	Notifications []Notification `json:"notifications"`

	// Users is unique by ID and append-only.
	Users []User `json:"users"`

	// CurrentUser is the active profile, or nil. A session switch only;
	// it never partitions lead visibility.
	CurrentUser *User `json:"currentUser,omitempty"`
}

// Clone returns a deep copy of the state. Mutating the copy never
// affects the original.
func (s *State) Clone() *State {
	out := &State{}
	if s.Leads != nil {
		out.Leads = make([]Lead, len(s.Leads))
		for i := range s.Leads {
			out.Leads[i] = s.Leads[i].Clone()
		}
	}
	if s.Notifications != nil {
		out.Notifications = make([]Notification, len(s.Notifications))
		copy(out.Notifications, s.Notifications)
	}
	if s.Users != nil {
		out.Users = make([]User, len(s.Users))
		copy(out.Users, s.Users)
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	return out
}

// FindLead returns the lead with the given ID, or nil.
func (s *State) FindLead(id string) *Lead {
	for i := range s.Leads {
		if s.Leads[i].ID == id {
			return &s.Leads[i]
		}
	}
	return nil
}

// UnreadCount returns the number of unread notifications.
func (s *State) UnreadCount() int {
	n := 0
	for i := range s.Notifications {
		if !s.Notifications[i].Read {
			n++
		}
	}
	return n
}

// DefaultState builds the seed state used when no prior data exists:
// three sample leads, a welcome notification, one profile, nobody
// signed in. The seed IDs are fixed so repeated cold starts converge.
func DefaultState(now time.Time) *State {
	return &State{
		Leads: []Lead{
			{
				ID:           "1",
				Name:         "Sarah Connor",
				Company:      "SkyNet Solutions",
				Email:        "sarah@skynet.io",
				LinkedInURL:  "https://linkedin.com/in/sarahconnor",
				Value:        12000,
				Stage:        StageLead,
				Source:       SourceDuxSoup,
				Notes:        "Interested in AI security protocols.",
				CreatedAt:    now.Add(-2 * 24 * time.Hour),
				LastActivity: now,
				Interactions: []Interaction{},
				Tasks:        []Task{},
			},
			{
				ID:           "2",
				Name:         "Arthur Dent",
				Company:      "Galactic Travels",
				Email:        "arthur@42.com",
				Value:        5000,
				Stage:        StageQualified,
				Source:       SourceManual,
				Notes:        "Looking for a lift to the nearest star system.",
				CreatedAt:    now.Add(-5 * 24 * time.Hour),
				LastActivity: now,
				Interactions: []Interaction{},
				Tasks:        []Task{},
			},
			{
				ID:           "3",
				Name:         "Ellen Ripley",
				Company:      "Weyland-Yutani",
				Email:        "ripley@weyland.com",
				Value:        45000,
				Stage:        StageProposal,
				Source:       SourceDuxSoup,
				Notes:        "Extermination services proposal pending.",
				CreatedAt:    now.Add(-10 * 24 * time.Hour),
				LastActivity: now,
				Interactions: []Interaction{},
				Tasks:        []Task{},
			},
		},
		Notifications: []Notification{
			{
				ID:        "n1",
				Title:     "Welcome",
				Message:   "Nexus CRM is ready for your sales!",
				Type:      NotificationSuccess,
				Timestamp: now,
			},
		},
		Users: []User{
			{ID: "u1", Name: "Local User", Role: "Owner"},
		},
	}
}

package domain

import "time"

// Stage is the pipeline position of a Lead.
type Stage string

// Pipeline stages, in funnel order.
const (
	StageLead        Stage = "Lead"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
	StageLost        Stage = "Lost"
)

// Stages lists every pipeline stage in funnel order.
// Columnar views render one bucket per entry, empty or not.
var Stages = []Stage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageWon,
	StageLost,
}

// IsValid returns true if the stage is recognised.
func (s Stage) IsValid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	default:
		return false
	}
}

// IsClosed returns true for terminal stages. Leads in a closed stage
// are excluded from the "active" aggregate.
func (s Stage) IsClosed() bool {
	return s == StageWon || s == StageLost
}

// String returns the string representation.
func (s Stage) String() string {
	return string(s)
}

// LeadSource identifies where a lead came from.
type LeadSource string

// Recognised lead sources.
const (
	SourceManual   LeadSource = "Manual"
	SourceDuxSoup  LeadSource = "Dux-Soup"
	SourceReferral LeadSource = "Referral"
	SourceInbound  LeadSource = "Inbound"
)

// IsValid returns true if the lead source is recognised.
func (s LeadSource) IsValid() bool {
	switch s {
	case SourceManual, SourceDuxSoup, SourceReferral, SourceInbound:
		return true
	default:
		return false
	}
}

// Lead is a sales prospect record. Interactions and Tasks are owned
// exclusively by their parent Lead and have no independent lifecycle.
type Lead struct {
	// ID is the unique identifier, immutable after creation.
	ID string `json:"id"`

	// Name is the contact's display name.
	Name string `json:"name"`

	// Company is the contact's organisation.
	Company string `json:"company"`

	// Email is the contact's email address.
	Email string `json:"email"`

	// Phone is an optional phone number.
	Phone string `json:"phone,omitempty"`

	// LinkedInURL is an optional profile link.
	LinkedInURL string `json:"linkedinUrl,omitempty"`

	// Avatar is an optional avatar image URL.
	Avatar string `json:"avatar,omitempty"`

	// Value is the deal value in whole currency units. Never negative.
	Value float64 `json:"value"`

	// Stage is the current pipeline position.
	Stage Stage `json:"stage"`

	// Source records where the lead came from.
	Source LeadSource `json:"source"`

	// Notes is free text about the lead.
	Notes string `json:"notes"`

	// CreatedAt is when the lead was added. Immutable.
	CreatedAt time.Time `json:"createdAt"`

	// LastActivity is refreshed on every mutation to the lead or its
	// children. Always >= CreatedAt.
	LastActivity time.Time `json:"lastActivity"`

	// Interactions holds logged contact events, newest first.
	Interactions []Interaction `json:"interactions"`

	// Tasks holds action items, newest first.
	Tasks []Task `json:"tasks"`
}

// Clone returns a deep copy of the lead, including nested collections.
func (l Lead) Clone() Lead {
	out := l
	if l.Interactions != nil {
		out.Interactions = make([]Interaction, len(l.Interactions))
		copy(out.Interactions, l.Interactions)
	}
	if l.Tasks != nil {
		out.Tasks = make([]Task, len(l.Tasks))
		copy(out.Tasks, l.Tasks)
		for i := range out.Tasks {
			if d := out.Tasks[i].CompletedDate; d != nil {
				dc := *d
				out.Tasks[i].CompletedDate = &dc
			}
		}
	}
	return out
}

// LeadPatch is a partial update for a Lead. Nil fields are left
// untouched by the merge; set fields overwrite.
type LeadPatch struct {
	Name        *string
	Company     *string
	Email       *string
	Phone       *string
	LinkedInURL *string
	Avatar      *string
	Value       *float64
	Stage       *Stage
	Source      *LeadSource
	Notes       *string
}

// Apply merges the patch over the lead in place. LastActivity is the
// caller's responsibility: even an empty patch bumps recency.
func (p LeadPatch) Apply(l *Lead) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.LinkedInURL != nil {
		l.LinkedInURL = *p.LinkedInURL
	}
	if p.Avatar != nil {
		l.Avatar = *p.Avatar
	}
	if p.Value != nil {
		l.Value = *p.Value
	}
	if p.Stage != nil {
		l.Stage = *p.Stage
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}

// InteractionType classifies a logged contact event.
type InteractionType string

// Recognised interaction types.
const (
	InteractionCall     InteractionType = "Call"
	InteractionLinkedIn InteractionType = "LinkedIn"
	InteractionEmail    InteractionType = "Email"
	InteractionNote     InteractionType = "Note"
)

// Interaction is an immutable logged contact event.
type Interaction struct {
	// ID is the unique identifier.
	ID string `json:"id"`

	// Type classifies the contact event.
	Type InteractionType `json:"type"`

	// Content is the free-text body. Empty content is not persisted.
	Content string `json:"content"`

	// Timestamp is the creation time. Immutable.
	Timestamp time.Time `json:"timestamp"`
}

// TaskType classifies an action item.
type TaskType string

// Recognised task types.
const (
	TaskFollowUp TaskType = "Follow-up"
	TaskMeeting  TaskType = "Meeting"
	TaskCall     TaskType = "Call"
	TaskEmail    TaskType = "Email"
	TaskLinkedIn TaskType = "LinkedIn"
	TaskResearch TaskType = "Research"
)

// TaskPriority orders tasks for the pending roll-up.
type TaskPriority string

// Recognised task priorities.
const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// Task is a schedulable, completable action item.
type Task struct {
	// ID is the unique identifier.
	ID string `json:"id"`

	// Title is the short description. Empty titles are not persisted.
	Title string `json:"title"`

	// Type classifies the task.
	Type TaskType `json:"type"`

	// Priority orders the task in roll-ups.
	Priority TaskPriority `json:"priority"`

	// TargetDate is when the task is due.
	TargetDate time.Time `json:"targetDate"`

	// Completed marks the task done.
	Completed bool `json:"completed"`

	// CompletedDate is set exactly when Completed transitions to true
	// and cleared when it reverts to false.
	CompletedDate *time.Time `json:"completedDate,omitempty"`

	// CreatedAt is when the task was added. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}

// TaskSuggestion is an assistant-proposed task for a lead.
// Suggestions only become Tasks through the store engine.
type TaskSuggestion struct {
	Title    string       `json:"title"`
	Type     TaskType     `json:"type"`
	Priority TaskPriority `json:"priority"`
}

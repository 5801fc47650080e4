package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateClone_IsDeep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := DefaultState(now)
	st.Leads[0].Tasks = []Task{{ID: "t1", Title: "Call back"}}
	st.CurrentUser = &st.Users[0]

	clone := st.Clone()

	clone.Leads[0].Name = "changed"
	clone.Leads[0].Tasks[0].Title = "changed"
	clone.Notifications[0].Read = true
	clone.Users[0].Name = "changed"
	clone.CurrentUser.Name = "changed"

	assert.Equal(t, "Sarah Connor", st.Leads[0].Name)
	assert.Equal(t, "Call back", st.Leads[0].Tasks[0].Title)
	assert.False(t, st.Notifications[0].Read)
	assert.Equal(t, "Local User", st.Users[0].Name)
	assert.Equal(t, "Local User", st.CurrentUser.Name)
}

func TestStateFindLead(t *testing.T) {
	st := DefaultState(time.Now())

	l := st.FindLead("2")
	require.NotNil(t, l)
	assert.Equal(t, "Arthur Dent", l.Name)

	// Returned pointer aliases the stored lead.
	l.Notes = "updated"
	assert.Equal(t, "updated", st.Leads[1].Notes)

	assert.Nil(t, st.FindLead("missing"))
}

func TestStateUnreadCount(t *testing.T) {
	st := &State{Notifications: []Notification{
		{ID: "1"},
		{ID: "2", Read: true},
		{ID: "3"},
	}}
	assert.Equal(t, 2, st.UnreadCount())
}

func TestDefaultState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := DefaultState(now)

	require.Len(t, st.Leads, 3)
	assert.Equal(t, "Sarah Connor", st.Leads[0].Name)
	assert.Equal(t, StageProposal, st.Leads[2].Stage)
	assert.Equal(t, float64(45000), st.Leads[2].Value)

	require.Len(t, st.Notifications, 1)
	assert.Equal(t, "Welcome", st.Notifications[0].Title)
	assert.Equal(t, NotificationSuccess, st.Notifications[0].Type)

	require.Len(t, st.Users, 1)
	assert.Nil(t, st.CurrentUser)
}

func TestLeadClone_IsDeep(t *testing.T) {
	done := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	l := Lead{
		ID:           "1",
		Interactions: []Interaction{{ID: "i1", Content: "hello"}},
		Tasks:        []Task{{ID: "t1", Title: "call", Completed: true, CompletedDate: &done}},
	}

	c := l.Clone()
	c.Interactions[0].Content = "changed"
	c.Tasks[0].Title = "changed"
	*c.Tasks[0].CompletedDate = c.Tasks[0].CompletedDate.AddDate(0, 0, 7)

	assert.Equal(t, "hello", l.Interactions[0].Content)
	assert.Equal(t, "call", l.Tasks[0].Title)
	assert.Equal(t, done, *l.Tasks[0].CompletedDate)
}

func TestLeadPatch_Apply(t *testing.T) {
	l := Lead{Name: "Arthur", Company: "Galactic Travels", Value: 5000, Stage: StageQualified}

	name := "Arthur Dent"
	value := 7500.0
	stage := StageProposal
	LeadPatch{Name: &name, Value: &value, Stage: &stage}.Apply(&l)

	assert.Equal(t, "Arthur Dent", l.Name)
	assert.Equal(t, 7500.0, l.Value)
	assert.Equal(t, StageProposal, l.Stage)
	// Untouched fields survive.
	assert.Equal(t, "Galactic Travels", l.Company)
}

func TestLeadPatch_EmptyIsNoChange(t *testing.T) {
	l := Lead{Name: "Arthur", Value: 5000}
	LeadPatch{}.Apply(&l)
	assert.Equal(t, "Arthur", l.Name)
	assert.Equal(t, 5000.0, l.Value)
}

func TestStageIsValid(t *testing.T) {
	for _, s := range Stages {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Stage("Imagined").IsValid())
}

func TestStageIsClosed(t *testing.T) {
	assert.True(t, StageWon.IsClosed())
	assert.True(t, StageLost.IsClosed())
	assert.False(t, StageLead.IsClosed())
	assert.False(t, StageNegotiation.IsClosed())
}

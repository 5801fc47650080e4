package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLeads() []Lead {
	return []Lead{
		{ID: "1", Name: "Sarah Connor", Company: "SkyNet Solutions", Email: "sarah@skynet.io", Value: 12000, Stage: StageLead, Notes: "AI security"},
		{ID: "2", Name: "Arthur Dent", Company: "Galactic Travels", Email: "arthur@42.com", Value: 5000, Stage: StageQualified, Notes: "towel"},
		{ID: "3", Name: "Ellen Ripley", Company: "Weyland-Yutani", Email: "ripley@weyland.com", Value: 45000, Stage: StageProposal},
	}
}

func TestFilterLeads_EmptyQueryReturnsAll(t *testing.T) {
	leads := sampleLeads()
	got := FilterLeads(leads, "")
	assert.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterLeads_CaseInsensitive(t *testing.T) {
	leads := sampleLeads()

	got := FilterLeads(leads, "SKYNET")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = FilterLeads(leads, "weyland")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterLeads_MatchesAnyField(t *testing.T) {
	leads := sampleLeads()

	// name
	assert.Len(t, FilterLeads(leads, "arthur"), 1)
	// email
	assert.Len(t, FilterLeads(leads, "42.com"), 1)
	// notes
	assert.Len(t, FilterLeads(leads, "towel"), 1)
	// no match
	assert.Empty(t, FilterLeads(leads, "nostromo"))
}

func TestStageBuckets_AllStagesPresent(t *testing.T) {
	buckets := StageBuckets(sampleLeads())

	require.Len(t, buckets, len(Stages))
	for _, s := range Stages {
		_, ok := buckets[s]
		assert.True(t, ok, "missing bucket for stage %s", s)
	}

	assert.Len(t, buckets[StageLead], 1)
	assert.Len(t, buckets[StageQualified], 1)
	assert.Len(t, buckets[StageProposal], 1)
	assert.Empty(t, buckets[StageWon])
	assert.Empty(t, buckets[StageLost])
}

func TestStageBuckets_PreservesOrderWithinBucket(t *testing.T) {
	leads := []Lead{
		{ID: "a", Stage: StageLead},
		{ID: "b", Stage: StageLead},
		{ID: "c", Stage: StageLead},
	}
	buckets := StageBuckets(leads)
	require.Len(t, buckets[StageLead], 3)
	assert.Equal(t, "a", buckets[StageLead][0].ID)
	assert.Equal(t, "b", buckets[StageLead][1].ID)
	assert.Equal(t, "c", buckets[StageLead][2].ID)
}

func TestTotalValue(t *testing.T) {
	assert.Equal(t, float64(62000), TotalValue(sampleLeads()))
	assert.Zero(t, TotalValue(nil))
}

func TestStageValue(t *testing.T) {
	leads := sampleLeads()
	assert.Equal(t, float64(12000), StageValue(leads, StageLead))
	assert.Equal(t, float64(45000), StageValue(leads, StageProposal))
	assert.Zero(t, StageValue(leads, StageWon))
}

func TestWonValue(t *testing.T) {
	leads := sampleLeads()
	assert.Zero(t, WonValue(leads))

	leads = append(leads, Lead{ID: "4", Value: 30000, Stage: StageWon},
		Lead{ID: "5", Value: 9000, Stage: StageWon},
		Lead{ID: "6", Value: 1000, Stage: StageLost})
	assert.Equal(t, float64(39000), WonValue(leads))
}

func TestActiveLeadCount_ExcludesClosedStages(t *testing.T) {
	leads := append(sampleLeads(),
		Lead{ID: "4", Stage: StageWon, Value: 1000},
		Lead{ID: "5", Stage: StageLost, Value: 2000},
	)
	assert.Equal(t, 3, ActiveLeadCount(leads))
}

func TestPendingTasks_HighPriorityFirstThenDate(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	}
	leads := []Lead{
		{ID: "l1", Name: "One", Tasks: []Task{
			{ID: "t1", Priority: PriorityMedium, TargetDate: d(1)},
			{ID: "t2", Priority: PriorityHigh, TargetDate: d(20)},
			{ID: "t3", Priority: PriorityLow, TargetDate: d(2), Completed: true},
		}},
		{ID: "l2", Name: "Two", Tasks: []Task{
			{ID: "t4", Priority: PriorityHigh, TargetDate: d(5)},
			{ID: "t5", Priority: PriorityLow, TargetDate: d(3)},
		}},
	}

	got := PendingTasks(leads)
	require.Len(t, got, 4)

	// High before everything else, earlier date first within High.
	assert.Equal(t, "t4", got[0].Task.ID)
	assert.Equal(t, "t2", got[1].Task.ID)
	// Non-high sorted by date.
	assert.Equal(t, "t1", got[2].Task.ID)
	assert.Equal(t, "t5", got[3].Task.ID)

	// Owning lead is carried along.
	assert.Equal(t, "l2", got[0].LeadID)
	assert.Equal(t, "Two", got[0].LeadName)
}

func TestPendingTasks_ExcludesCompleted(t *testing.T) {
	leads := []Lead{
		{ID: "l1", Tasks: []Task{
			{ID: "t1", Completed: true},
			{ID: "t2", Completed: true},
		}},
	}
	assert.Empty(t, PendingTasks(leads))
}

func TestRecentLeads(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	leads := []Lead{
		{ID: "old", LastActivity: base},
		{ID: "newest", LastActivity: base.Add(48 * time.Hour)},
		{ID: "mid", LastActivity: base.Add(24 * time.Hour)},
	}

	got := RecentLeads(leads, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	// Input order untouched.
	assert.Equal(t, "old", leads[0].ID)
}

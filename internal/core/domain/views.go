package domain

import (
	"sort"
	"strings"
)

// Derived views are pure projections over a state snapshot. Nothing
// here is stored; consumers recompute on read.

// FilterLeads returns the leads whose name, company, email or notes
// contain the query, case-insensitively. An empty query returns the
// input unfiltered with its order preserved.
func FilterLeads(leads []Lead, query string) []Lead {
	if query == "" {
		return leads
	}
	q := strings.ToLower(query)
	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Company), q) ||
			strings.Contains(strings.ToLower(l.Email), q) ||
			strings.Contains(strings.ToLower(l.Notes), q) {
			out = append(out, l)
		}
	}
	return out
}

// StageBuckets partitions leads by stage for columnar display. Every
// stage has an entry, empty or not; within a bucket the input order
// is preserved.
func StageBuckets(leads []Lead) map[Stage][]Lead {
	buckets := make(map[Stage][]Lead, len(Stages))
	for _, s := range Stages {
		buckets[s] = []Lead{}
	}
	for _, l := range leads {
		buckets[l.Stage] = append(buckets[l.Stage], l)
	}
	return buckets
}

// TotalValue sums the deal value across all leads.
func TotalValue(leads []Lead) float64 {
	var sum float64
	for _, l := range leads {
		sum += l.Value
	}
	return sum
}

// StageValue sums the deal value of leads in the given stage.
func StageValue(leads []Lead, stage Stage) float64 {
	var sum float64
	for _, l := range leads {
		if l.Stage == stage {
			sum += l.Value
		}
	}
	return sum
}

// WonValue sums the deal value of closed-won leads.
func WonValue(leads []Lead) float64 {
	return StageValue(leads, StageWon)
}

// ActiveLeadCount counts leads that are not Won or Lost.
func ActiveLeadCount(leads []Lead) int {
	n := 0
	for _, l := range leads {
		if !l.Stage.IsClosed() {
			n++
		}
	}
	return n
}

// PendingTask is an incomplete task tagged with its owning lead.
type PendingTask struct {
	Task     Task
	LeadID   string
	LeadName string
}

// PendingTasks flattens all incomplete tasks across leads into one
// sequence, High priority first, then ascending target date. The sort
// happens at read time; stored task order is untouched.
func PendingTasks(leads []Lead) []PendingTask {
	var out []PendingTask
	for _, l := range leads {
		for _, t := range l.Tasks {
			if !t.Completed {
				out = append(out, PendingTask{Task: t, LeadID: l.ID, LeadName: l.Name})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		hi := out[i].Task.Priority == PriorityHigh
		hj := out[j].Task.Priority == PriorityHigh
		if hi != hj {
			return hi
		}
		return out[i].Task.TargetDate.Before(out[j].Task.TargetDate)
	})
	return out
}

// RecentLeads returns up to n leads ordered by last activity, newest
// first. The input is not modified.
func RecentLeads(leads []Lead, n int) []Lead {
	out := make([]Lead, len(leads))
	copy(out, leads)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

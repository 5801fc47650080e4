package driving

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// AssistService exposes the AI sales assistant to driving adapters.
//
// Every method absorbs adapter failures and returns a safe fallback
// value instead of an error; a broken or missing assistant never
// blocks the UI or the mutation path.
type AssistService interface {
	// FollowUp returns a personalised follow-up message for the lead,
	// or an apologetic placeholder on failure.
	FollowUp(ctx context.Context, leadID string) string

	// QualityScore returns "Score: [number] - [reasoning]" for the
	// lead, or "Score: N/A - Analysis unavailable." on failure.
	QualityScore(ctx context.Context, leadID string) string

	// FixGrammar returns the corrected text, or the input unchanged
	// on failure.
	FixGrammar(ctx context.Context, text string) string

	// SuggestTasks returns proposed next-step tasks for the lead, or
	// an empty list on failure.
	SuggestTasks(ctx context.Context, leadID string) []domain.TaskSuggestion

	// Enabled reports whether a real assistant is configured.
	Enabled() bool
}

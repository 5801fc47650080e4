package driven

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// SalesAssistant provides AI text generation for sales workflows.
// This is an optional service - when nil, assist features degrade to
// safe fallback values and never touch the mutation path.
//
// Implementations may include:
//   - Gemini (Google AI)
//   - A null provider for the unconfigured case
type SalesAssistant interface {
	// GenerateFollowUp writes a short personalised follow-up message
	// for the lead, based on its stage and notes.
	GenerateFollowUp(ctx context.Context, lead domain.Lead) (string, error)

	// AnalyzeQuality scores the lead 1-100 with a one-line
	// recommendation, formatted "Score: [number] - [reasoning]".
	AnalyzeQuality(ctx context.Context, lead domain.Lead) (string, error)

	// FixGrammar returns a grammar-corrected version of the text.
	FixGrammar(ctx context.Context, text string) (string, error)

	// SuggestTasks proposes next-step tasks for the lead.
	SuggestTasks(ctx context.Context, lead domain.Lead) ([]domain.TaskSuggestion, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Enabled reports whether the assistant can actually serve
	// requests. The null provider returns false.
	Enabled() bool

	// Close releases resources.
	Close() error
}

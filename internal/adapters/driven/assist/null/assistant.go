// Package null provides a disabled sales assistant. Every call
// reports domain.ErrAssistUnavailable, which the assist service turns
// into its safe fallback values.
package null

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
)

// Ensure Assistant implements the interface.
var _ driven.SalesAssistant = (*Assistant)(nil)

// Assistant is the no-op sales assistant.
type Assistant struct{}

// NewAssistant creates the disabled assistant.
func NewAssistant() *Assistant {
	return &Assistant{}
}

// GenerateFollowUp reports the assistant as unavailable.
func (a *Assistant) GenerateFollowUp(_ context.Context, _ domain.Lead) (string, error) {
	return "", domain.ErrAssistUnavailable
}

// AnalyzeQuality reports the assistant as unavailable.
func (a *Assistant) AnalyzeQuality(_ context.Context, _ domain.Lead) (string, error) {
	return "", domain.ErrAssistUnavailable
}

// FixGrammar reports the assistant as unavailable.
func (a *Assistant) FixGrammar(_ context.Context, _ string) (string, error) {
	return "", domain.ErrAssistUnavailable
}

// SuggestTasks reports the assistant as unavailable.
func (a *Assistant) SuggestTasks(_ context.Context, _ domain.Lead) ([]domain.TaskSuggestion, error) {
	return nil, domain.ErrAssistUnavailable
}

// ModelName returns "none".
func (a *Assistant) ModelName() string {
	return "none"
}

// Enabled is always false.
func (a *Assistant) Enabled() bool {
	return false
}

// Close is a no-op.
func (a *Assistant) Close() error {
	return nil
}

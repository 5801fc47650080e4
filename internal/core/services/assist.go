package services

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// Ensure AssistService implements the interface.
var _ driving.AssistService = (*AssistService)(nil)

// Fallback values returned when the assistant fails or is missing.
// The assistant is an opaque, fallible collaborator; its failures
// never reach the mutation or rendering path.
const (
	fallbackFollowUp = "Error generating content. Please try again later."
	fallbackScore    = "Score: N/A - Analysis unavailable."
)

// AssistService adapts the SalesAssistant port for driving adapters,
// converting every failure into a safe default value.
type AssistService struct {
	engine    driving.CRMService
	assistant driven.SalesAssistant
}

// NewAssistService creates the assist boundary. assistant may be nil;
// all features then return their fallbacks.
func NewAssistService(engine driving.CRMService, assistant driven.SalesAssistant) *AssistService {
	return &AssistService{engine: engine, assistant: assistant}
}

// Enabled reports whether a real assistant is configured. The null
// provider counts as absent.
func (s *AssistService) Enabled() bool {
	return s.assistant != nil && s.assistant.Enabled()
}

// findLead resolves a lead from the current snapshot.
func (s *AssistService) findLead(id string) (domain.Lead, bool) {
	st := s.engine.State()
	l := st.FindLead(id)
	if l == nil {
		return domain.Lead{}, false
	}
	return *l, true
}

// FollowUp returns a personalised follow-up message for the lead.
func (s *AssistService) FollowUp(ctx context.Context, leadID string) string {
	lead, ok := s.findLead(leadID)
	if !ok || s.assistant == nil {
		return fallbackFollowUp
	}
	text, err := s.assistant.GenerateFollowUp(ctx, lead)
	if err != nil {
		logger.Warn("assist follow-up failed: %v", err)
		return fallbackFollowUp
	}
	return text
}

// QualityScore returns "Score: [number] - [reasoning]" for the lead.
func (s *AssistService) QualityScore(ctx context.Context, leadID string) string {
	lead, ok := s.findLead(leadID)
	if !ok || s.assistant == nil {
		return fallbackScore
	}
	text, err := s.assistant.AnalyzeQuality(ctx, lead)
	if err != nil {
		logger.Warn("assist analysis failed: %v", err)
		return fallbackScore
	}
	return text
}

// FixGrammar returns the corrected text, or the input unchanged when
// the assistant cannot help.
func (s *AssistService) FixGrammar(ctx context.Context, text string) string {
	if s.assistant == nil || text == "" {
		return text
	}
	fixed, err := s.assistant.FixGrammar(ctx, text)
	if err != nil || fixed == "" {
		if err != nil {
			logger.Warn("assist grammar fix failed: %v", err)
		}
		return text
	}
	return fixed
}

// SuggestTasks returns proposed next-step tasks for the lead, or an
// empty list. Suggestions only become Tasks through the store engine.
func (s *AssistService) SuggestTasks(ctx context.Context, leadID string) []domain.TaskSuggestion {
	lead, ok := s.findLead(leadID)
	if !ok || s.assistant == nil {
		return nil
	}
	suggestions, err := s.assistant.SuggestTasks(ctx, lead)
	if err != nil {
		logger.Warn("assist suggestions failed: %v", err)
		return nil
	}
	return suggestions
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/assist/null"
	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/storage/memory"
	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

// stubAssistant returns canned responses, or errors when failing.
type stubAssistant struct {
	failing bool
}

var errStubAssist = errors.New("assistant down")

func (a *stubAssistant) GenerateFollowUp(_ context.Context, lead domain.Lead) (string, error) {
	if a.failing {
		return "", errStubAssist
	}
	return "Hi " + lead.Name + ", just following up.", nil
}

func (a *stubAssistant) AnalyzeQuality(_ context.Context, _ domain.Lead) (string, error) {
	if a.failing {
		return "", errStubAssist
	}
	return "Score: 8 - Strong budget signal.", nil
}

func (a *stubAssistant) FixGrammar(_ context.Context, text string) (string, error) {
	if a.failing {
		return "", errStubAssist
	}
	return "Fixed: " + text, nil
}

func (a *stubAssistant) SuggestTasks(_ context.Context, _ domain.Lead) ([]domain.TaskSuggestion, error) {
	if a.failing {
		return nil, errStubAssist
	}
	return []domain.TaskSuggestion{
		{Title: "Schedule demo", Type: domain.TaskMeeting, Priority: domain.PriorityHigh},
	}, nil
}

func (a *stubAssistant) ModelName() string { return "stub" }
func (a *stubAssistant) Enabled() bool     { return true }
func (a *stubAssistant) Close() error      { return nil }

func TestAssistService_Enabled(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	assert.False(t, NewAssistService(engine, nil).Enabled())
	assert.True(t, NewAssistService(engine, &stubAssistant{}).Enabled())
	// A disabled provider is still non-nil; Enabled must see through it.
	assert.False(t, NewAssistService(engine, null.NewAssistant()).Enabled())
}

func TestAssistService_FollowUp(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	svc := NewAssistService(engine, &stubAssistant{})

	got := svc.FollowUp(context.Background(), "1")
	assert.Equal(t, "Hi Sarah Connor, just following up.", got)
}

func TestAssistService_FollowUpFallbacks(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	ctx := context.Background()

	// No assistant configured.
	svc := NewAssistService(engine, nil)
	assert.Equal(t, fallbackFollowUp, svc.FollowUp(ctx, "1"))

	// Assistant fails.
	svc = NewAssistService(engine, &stubAssistant{failing: true})
	assert.Equal(t, fallbackFollowUp, svc.FollowUp(ctx, "1"))

	// Unknown lead.
	svc = NewAssistService(engine, &stubAssistant{})
	assert.Equal(t, fallbackFollowUp, svc.FollowUp(ctx, "missing"))
}

func TestAssistService_QualityScore(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	ctx := context.Background()

	svc := NewAssistService(engine, &stubAssistant{})
	assert.Equal(t, "Score: 8 - Strong budget signal.", svc.QualityScore(ctx, "1"))

	svc = NewAssistService(engine, &stubAssistant{failing: true})
	assert.Equal(t, fallbackScore, svc.QualityScore(ctx, "1"))

	svc = NewAssistService(engine, nil)
	assert.Equal(t, fallbackScore, svc.QualityScore(ctx, "1"))
}

func TestAssistService_FixGrammar(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	ctx := context.Background()

	svc := NewAssistService(engine, &stubAssistant{})
	assert.Equal(t, "Fixed: helo wrold", svc.FixGrammar(ctx, "helo wrold"))

	// Failure returns the input untouched.
	svc = NewAssistService(engine, &stubAssistant{failing: true})
	assert.Equal(t, "helo wrold", svc.FixGrammar(ctx, "helo wrold"))

	svc = NewAssistService(engine, nil)
	assert.Equal(t, "helo wrold", svc.FixGrammar(ctx, "helo wrold"))
	assert.Empty(t, svc.FixGrammar(ctx, ""))
}

func TestAssistService_SuggestTasks(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	ctx := context.Background()

	svc := NewAssistService(engine, &stubAssistant{})
	got := svc.SuggestTasks(ctx, "1")
	require.Len(t, got, 1)
	assert.Equal(t, "Schedule demo", got[0].Title)

	assert.Nil(t, NewAssistService(engine, &stubAssistant{failing: true}).SuggestTasks(ctx, "1"))
	assert.Nil(t, NewAssistService(engine, nil).SuggestTasks(ctx, "1"))
	assert.Nil(t, svc.SuggestTasks(ctx, "missing"))
}

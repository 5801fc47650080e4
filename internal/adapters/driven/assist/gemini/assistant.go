// Package gemini provides a sales assistant adapter using the Google
// Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
)

// Ensure Assistant implements the interface.
var _ driven.SalesAssistant = (*Assistant)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Gemini assistant.
type Config struct {
	// APIKey is the Google AI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://generativelanguage.googleapis.com).
	BaseURL string

	// Model is the model to use (default: gemini-3-flash-preview).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Assistant provides sales text generation using the Gemini API.
type Assistant struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// generateRequest is the Gemini generateContent request format.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the Gemini generateContent response format.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewAssistant creates a new Gemini sales assistant.
func NewAssistant(cfg Config) (*Assistant, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Assistant{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// generate sends a single-prompt request and returns the text.
func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.baseURL, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("gemini error: %s", genResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	var result strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		result.WriteString(p.Text)
	}
	return result.String(), nil
}

// GenerateFollowUp writes a short personalised follow-up message.
func (a *Assistant) GenerateFollowUp(ctx context.Context, lead domain.Lead) (string, error) {
	prompt := fmt.Sprintf(
		`You are a professional sales assistant for a high-tech CRM company. Write a short, personalized follow-up LinkedIn message or email to %s from %s. They are currently at the %q stage of the sales pipeline. Their interest is: %s. Make it catchy and human.`,
		lead.Name, lead.Company, lead.Stage, lead.Notes)
	return a.generate(ctx, prompt)
}

// AnalyzeQuality scores the lead 1-100 with a one-line recommendation.
func (a *Assistant) AnalyzeQuality(ctx context.Context, lead domain.Lead) (string, error) {
	prompt := fmt.Sprintf(
		`Analyze the following lead data and provide a "Lead Quality Score" (1-100) and a one-sentence recommendation. Lead: Name: %s, Company: %s, Source: %s, Value: $%.0f, Notes: %s. Output in format Score: [number] - [Reasoning]`,
		lead.Name, lead.Company, lead.Source, lead.Value, lead.Notes)
	return a.generate(ctx, prompt)
}

// FixGrammar returns a grammar-corrected version of the text.
func (a *Assistant) FixGrammar(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Correct the grammar and spelling of the following note. Keep the tone and meaning, return ONLY the corrected text, nothing else.\n\n%s",
		text)
	out, err := a.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// SuggestTasks proposes next-step tasks for the lead. The model is
// asked for a JSON array; anything undecodable is an error and the
// caller falls back to an empty list.
func (a *Assistant) SuggestTasks(ctx context.Context, lead domain.Lead) ([]domain.TaskSuggestion, error) {
	prompt := fmt.Sprintf(
		`Suggest up to 3 concrete next-step sales tasks for this lead. Lead: Name: %s, Company: %s, Stage: %s, Notes: %s. Respond with ONLY a JSON array of objects with fields "title", "type" (one of Follow-up, Meeting, Call, Email, LinkedIn, Research) and "priority" (High, Medium or Low).`,
		lead.Name, lead.Company, lead.Stage, lead.Notes)

	out, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models wrap JSON in fences more often than not.
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")

	var suggestions []domain.TaskSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return suggestions, nil
}

// ModelName returns the model being used.
func (a *Assistant) ModelName() string {
	return a.model
}

// Enabled is always true; construction already validated the config.
func (a *Assistant) Enabled() bool {
	return true
}

// Close releases resources.
func (a *Assistant) Close() error {
	a.client.CloseIdleConnections()
	return nil
}

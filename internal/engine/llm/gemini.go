package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/irahardianto/scribe/internal/engine/config"
	"github.com/irahardianto/scribe/internal/platform/logger"
	"google.golang.org/genai"
)

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	// GenerateContent sends a prompt and returns a response.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Production code uses DefaultClientFactory;
// tests inject a factory that returns a mock.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

// genaiClient wraps the real genai.Client to satisfy GenerativeClient.
type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiClient implements Client using the Google Gemini API.
type GeminiClient struct {
	apiKey  string
	model   string
	factory ClientFactory
}

// NewGeminiClient creates a new GeminiClient.
// The apiKey must be non-empty; callers should validate before construction.
// The factory creates the underlying generative client; use DefaultClientFactory for production.
func NewGeminiClient(apiKey, model string, factory ClientFactory) *GeminiClient {
	if model == "" {
		model = config.DefaultModel
	}
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		factory: factory,
	}
}

// Draft sends a prompt to Gemini and returns the drafted commit message.
// A single request is made, with no retry and no timeout beyond what the
// caller's context carries.
func (c *GeminiClient) Draft(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	log.Info("drafting commit message", "model", c.model)
	start := time.Now()

	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	resp, err := client.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating commit message: %w", err)
	}

	text := extractText(resp)

	log.Info("draft complete",
		"model", c.model,
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return text, nil
}

// extractText pulls the text of the first candidate from a Gemini response.
// A response with no candidates or no text yields an empty string; the
// caller decides whether that is worth reporting.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	return candidate.Content.Parts[0].Text
}

package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements LLMClient using Google's Gemini API. It exists so
// deployments without an OpenAI key can still run the extraction pipeline.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a Gemini-backed LLM client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("extraction: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("extraction: failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelID: modelID}, nil
}

// Complete sends the request to Gemini. The request's Model field is ignored;
// Gemini model selection happens at client construction.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	model := c.client.GenerativeModel(c.modelID)

	if req.Temperature >= 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(req.MaxTokens)
	}

	var systemParts []string
	var userParts []string
	for _, msg := range req.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		if msg.Role == ChatRoleSystem {
			systemParts = append(systemParts, content)
			continue
		}
		userParts = append(userParts, content)
	}
	if len(systemParts) > 0 {
		model.SystemInstruction = genai.NewUserContent(genai.Text(strings.Join(systemParts, "\n\n")))
	}
	if len(userParts) == 0 {
		return CompletionResponse{}, errors.New("extraction: gemini requires at least one user message")
	}

	resp, err := model.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n\n")))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("extraction: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return CompletionResponse{}, errors.New("extraction: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return CompletionResponse{}, errors.New("extraction: gemini returned empty content")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return CompletionResponse{Text: strings.TrimSpace(text.String())}, nil
}

package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements LLMClient against the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI-backed LLM client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("extraction: openai api key is required")
	}
	return &OpenAIClient{client: openai.NewClient(apiKey)}, nil
}

// Complete sends a chat completion request and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == ChatRoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   int(req.MaxTokens),
	})
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("extraction: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return CompletionResponse{}, errors.New("extraction: openai returned no choices")
	}
	return CompletionResponse{Text: resp.Choices[0].Message.Content}, nil
}

package extraction

import "context"

const (
	ChatRoleSystem = "system"
	ChatRoleUser   = "user"
)

// ChatMessage is a single message in a chat-completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes one chat-completion call.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float32
	MaxTokens   int32
}

// CompletionResponse carries the model's text output.
type CompletionResponse struct {
	Text string
}

// LLMClient abstracts the hosted text-generation backend.
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

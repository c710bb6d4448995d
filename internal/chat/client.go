// Package chat wraps the OpenAI-compatible completion API behind a small
// interface so the service layer can swap it for a fake in tests and fall
// back to canned replies when no client is configured.
package chat

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one role/content pair in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces one completion for a message sequence. Implementations
// must respect ctx cancellation; callers bound every call with a timeout.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// chatTemperature favors varied, conversational replies over deterministic
// ones.
const chatTemperature = 0.9

// OpenAIClient implements Completer against the OpenAI chat completion API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates a client for the given credential and model.
func NewOpenAIClient(apiKey, model string, maxTokens int) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Complete performs a single completion call. There is no retry: any failure
// is returned to the caller, which degrades to the fallback script.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: chatTemperature,
		MaxTokens:   c.maxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion call failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

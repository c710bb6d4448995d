package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/chat"
	"github.com/aebalz/mindwell-backend/internal/mood"
)

// historyWindow is how many trailing conversation entries are forwarded to
// the completion API: three exchanges, oldest first.
const historyWindow = 6

// ChatReply is the outcome of a chat request. IsFallback distinguishes a
// generated reply from the canned script.
type ChatReply struct {
	Reply      string
	IsFallback bool
}

// ChatServiceInterface defines the interface for the chat endpoint.
type ChatServiceInterface interface {
	Respond(ctx context.Context, userID uint, message, emotion string, conversation []chat.Message) (*ChatReply, error)
}

// ChatService implements ChatServiceInterface. A nil completer means no
// credential is configured; every reply then comes from the fallback script.
type ChatService struct {
	Completer chat.Completer
	Timeout   time.Duration
}

// NewChatService creates a new ChatService.
func NewChatService(completer chat.Completer, timeout time.Duration) ChatServiceInterface {
	return &ChatService{Completer: completer, Timeout: timeout}
}

// Respond builds the message sequence for the resolved emotion and attempts
// one bounded completion call. Any failure, including a missing credential,
// degrades silently to the emotion's fallback script.
func (s *ChatService) Respond(ctx context.Context, userID uint, message, emotion string, conversation []chat.Message) (*ChatReply, error) {
	if userID == 0 || message == "" {
		return nil, apperr.Validation("User ID and message are required")
	}

	// An absent or unrecognized emotion reads as Unknown.
	label, ok := mood.Canonical(emotion)
	if !ok {
		label = "Unknown"
	}

	messages := make([]chat.Message, 0, historyWindow+2)
	messages = append(messages, chat.Message{Role: "system", Content: mood.PromptFor(label)})
	if len(conversation) > historyWindow {
		conversation = conversation[len(conversation)-historyWindow:]
	}
	messages = append(messages, conversation...)
	messages = append(messages, chat.Message{Role: "user", Content: message})

	if s.Completer != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
		defer cancel()

		reply, err := s.Completer.Complete(callCtx, messages)
		if err == nil {
			return &ChatReply{Reply: strings.TrimSpace(reply), IsFallback: false}, nil
		}
		log.Printf("Chat completion attempt failed, using fallback: %v", err)
	}

	return &ChatReply{
		Reply:      strings.Join(mood.FallbackFor(label), "\n"),
		IsFallback: true,
	}, nil
}

package lmtranslate

import (
	"context"
)

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

// UserMessage creates a user-role message
func UserMessage(content string) *Message {
	return &Message{Role: "user", Content: content}
}

// Model represents a model served by the inference server
type Model struct {
	ID string
}

// ChatRequest represents a single chat completion request
type ChatRequest struct {
	Model       string
	Messages    []*Message
	Temperature float64
}

// ChatResponse is the first choice of a chat completion
type ChatResponse struct {
	Role    string
	Content string
}

// Provider is an OpenAI-compatible inference server
type Provider interface {
	Models(ctx context.Context) ([]*Model, error)
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

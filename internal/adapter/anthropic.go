package adapter

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicMessages defines the Anthropic messages operation used for theme naming
//
//go:generate mockgen -source=anthropic.go -destination=../mocks/anthropic.go -package=mocks -mock_names=AnthropicMessages=MockAnthropicMessages
type AnthropicMessages interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// NewAnthropicMessages creates the messages service of an Anthropic client
func NewAnthropicMessages(apiKey string) AnthropicMessages {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &client.Messages
}

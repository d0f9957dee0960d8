package adapter

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient defines the OpenAI operations used for embeddings and theme naming
//
//go:generate mockgen -source=openai.go -destination=../mocks/openai.go -package=mocks -mock_names=OpenAIClient=MockOpenAIClient
type OpenAIClient interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient creates an OpenAI client; baseURL is optional and targets compatible gateways
func NewOpenAIClient(apiKey, baseURL string) OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

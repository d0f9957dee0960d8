package embedder

import (
	"context"
	"fmt"
	"sort"

	"github.com/sashabaranov/go-openai"

	"github.com/feral-file/founder-scout/internal/adapter"
)

// Provider turns texts into fixed-dimension vectors, one per text in input order
//
//go:generate mockgen -source=provider.go -destination=../mocks/embedding_provider.go -package=mocks -mock_names=Provider=MockEmbeddingProvider
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Model names the model recorded alongside each vector
	Model() string
	// Dimensions is the length of every returned vector
	Dimensions() int
}

// Preparer is implemented by providers that must see the whole corpus before embedding any batch.
// Prepare returns a fingerprint of the state its vectors depend on; a new fingerprint
// invalidates every stored vector.
type Preparer interface {
	Prepare(texts []string) string
}

// openAIProvider embeds texts with the OpenAI embeddings endpoint
type openAIProvider struct {
	client     adapter.OpenAIClient
	model      string
	dimensions int
}

// NewOpenAIProvider creates an OpenAI-backed provider
func NewOpenAIProvider(client adapter.OpenAIClient, model string, dimensions int) Provider {
	return &openAIProvider{client: client, model: model, dimensions: dimensions}
}

func (p *openAIProvider) Model() string {
	return p.model
}

func (p *openAIProvider) Dimensions() int {
	return p.dimensions
}

func (p *openAIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input:      texts,
		Model:      openai.EmbeddingModel(p.model),
		Dimensions: p.dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d, got %d", len(texts), len(resp.Data))
	}

	data := resp.Data
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, len(data))
	for i, d := range data {
		if len(d.Embedding) != p.dimensions {
			return nil, fmt.Errorf("embedding %d has %d dimensions, want %d", i, len(d.Embedding), p.dimensions)
		}
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

package naming

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"

	"github.com/feral-file/founder-scout/internal/adapter"
)

const (
	MAX_PROMPT_MEMBERS = 12
	MAX_BIO_CHARS      = 280
	MAX_NAME_CHARS     = 60
	MAX_OUTPUT_TOKENS  = 300
)

// Generator completes a naming prompt with a generative text service
//
//go:generate mockgen -source=generator.go -destination=../mocks/generator.go -package=mocks -mock_names=Generator=MockGenerator
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Provider names the backing service for logs
	Provider() string
}

// Generated is the parsed reply of a generator
type Generated struct {
	Name   string `json:"name"`
	Pain   string `json:"pain"`
	Unlock string `json:"unlock"`
}

func (g *Generated) apply(r Result) Result {
	r.Name = g.Name
	r.Generated = true
	if g.Pain != "" {
		pain := g.Pain
		r.PainSummary = &pain
	}
	if g.Unlock != "" {
		unlock := g.Unlock
		r.UnlockSummary = &unlock
	}
	return r
}

// BuildPrompt asks for a short theme name and two one-line summaries as JSON
func BuildPrompt(members []Member) string {
	var b strings.Builder
	b.WriteString("These early-stage founders were clustered together because they are building in a related space.\n")
	b.WriteString("Reply with JSON only: {\"name\": \"2-5 word theme name\", \"pain\": \"one sentence on the problem they attack\", \"unlock\": \"one sentence on what recently made it possible\"}.\n\n")

	for i, m := range members {
		if i == MAX_PROMPT_MEMBERS {
			break
		}
		bio := strings.TrimSpace(m.Bio)
		if r := []rune(bio); len(r) > MAX_BIO_CHARS {
			bio = string(r[:MAX_BIO_CHARS]) + "..."
		}
		fmt.Fprintf(&b, "- domain: %s; tags: %s; bio: %s\n", m.Domain, strings.Join(m.Tags, ", "), bio)
	}
	return b.String()
}

// ParseGenerated extracts the JSON object of a reply, tolerating code fences and surrounding prose
func ParseGenerated(text string) (*Generated, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var g Generated
	if err := json.Unmarshal([]byte(text[start:end+1]), &g); err != nil {
		return nil, fmt.Errorf("failed to parse reply: %w", err)
	}

	g.Name = strings.Trim(strings.TrimSpace(g.Name), `"'`)
	g.Pain = strings.TrimSpace(g.Pain)
	g.Unlock = strings.TrimSpace(g.Unlock)
	if g.Name == "" {
		return nil, fmt.Errorf("reply has an empty name")
	}
	if len([]rune(g.Name)) > MAX_NAME_CHARS {
		return nil, fmt.Errorf("reply name too long: %d chars", len([]rune(g.Name)))
	}
	return &g, nil
}

type openAIGenerator struct {
	client adapter.OpenAIClient
	model  string
}

// NewOpenAIGenerator creates a generator backed by OpenAI chat completions
func NewOpenAIGenerator(client adapter.OpenAIClient, model string) Generator {
	return &openAIGenerator{client: client, model: model}
}

func (g *openAIGenerator) Provider() string {
	return "openai"
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   MAX_OUTPUT_TOKENS,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

type anthropicGenerator struct {
	messages adapter.AnthropicMessages
	model    string
}

// NewAnthropicGenerator creates a generator backed by the Anthropic messages API
func NewAnthropicGenerator(messages adapter.AnthropicMessages, model string) Generator {
	return &anthropicGenerator{messages: messages, model: model}
}

func (g *anthropicGenerator) Provider() string {
	return "anthropic"
}

func (g *anthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: MAX_OUTPUT_TOKENS,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("anthropic returned no text")
	}
	return text.String(), nil
}

package gateway

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is the slice of the OpenAI client this backend needs,
// kept small so tests can inject a fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openaiBackend struct {
	name   string
	model  string
	client chatCompleter
}

// newOpenAIBackend binds an OpenAI-compatible endpoint. A non-empty
// baseURL points the client at any compatible server (Cerebras, local
// gateways) instead of the default API host.
func newOpenAIBackend(name, model, apiKey, baseURL string) Backend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openaiBackend{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (b *openaiBackend) Name() string  { return b.name }
func (b *openaiBackend) Model() string { return b.model }

func (b *openaiBackend) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", b.name)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("blank completion from %s", b.name)
	}
	return text, nil
}

package gateway

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatCompleter struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (f *fakeChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestOpenAIGenerate(t *testing.T) {
	fake := &fakeChatCompleter{resp: completionResponse("  summary text  ")}
	b := &openaiBackend{name: "primary", model: "gpt-4o-mini", client: fake}

	got, err := b.Generate(context.Background(), "system rules", "user content")
	require.NoError(t, err)
	assert.Equal(t, "summary text", got)

	assert.Equal(t, "gpt-4o-mini", fake.lastReq.Model)
	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastReq.Messages[0].Role)
	assert.Equal(t, "system rules", fake.lastReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, fake.lastReq.Messages[1].Role)
	assert.Equal(t, "user content", fake.lastReq.Messages[1].Content)
}

func TestOpenAIGenerateError(t *testing.T) {
	fake := &fakeChatCompleter{err: errors.New("boom")}
	b := &openaiBackend{name: "primary", model: "gpt-4o-mini", client: fake}

	_, err := b.Generate(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "boom")
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	fake := &fakeChatCompleter{}
	b := &openaiBackend{name: "primary", model: "gpt-4o-mini", client: fake}

	_, err := b.Generate(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "empty response")
}

func TestOpenAIGenerateBlankCompletion(t *testing.T) {
	fake := &fakeChatCompleter{resp: completionResponse("   ")}
	b := &openaiBackend{name: "primary", model: "gpt-4o-mini", client: fake}

	_, err := b.Generate(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "blank completion")
}

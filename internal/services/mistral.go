package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

type mistralClient struct {
	client *openai.Client
	opts   ChatOptions
}

// NewMistralClient talks to Mistral's OpenAI-compatible chat completions
// endpoint with bearer-token auth.
func NewMistralClient(apiKey, baseURL string, opts ChatOptions) ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	return &mistralClient{
		client: openai.NewClientWithConfig(cfg),
		opts:   opts,
	}
}

func (m *mistralClient) Name() string {
	return "mistral"
}

// Complete implements ChatClient.
func (m *mistralClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, m.opts.Timeout)
	defer cancel()

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: m.opts.Temperature,
		MaxTokens:   m.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("mistral chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("mistral returned no choices")
	}

	log.Debug().
		Str("model", m.opts.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Mistral response received")

	return resp.Choices[0].Message.Content, nil
}

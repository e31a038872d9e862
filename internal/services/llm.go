package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/studybuddy/internal/config"
)

// ChatClient sends a single user prompt to a chat model and returns the
// text of the first choice. One call, no retries.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

type ChatOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// NewChatClient builds the client for the configured provider.
func NewChatClient(ctx context.Context, cfg config.LLMConfig) (ChatClient, error) {
	switch cfg.Provider {
	case "", "mistral":
		return NewMistralClient(cfg.MistralAPIKey, cfg.MistralBaseURL, ChatOptions{
			Model:       cfg.MistralModel,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		}), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, ChatOptions{
			Model:       cfg.GeminiModel,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

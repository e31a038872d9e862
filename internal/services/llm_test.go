package services

import (
	"context"
	"testing"
	"time"

	"alfredoptarigan/studybuddy/internal/config"
)

func TestNewChatClient(t *testing.T) {
	cfg := config.LLMConfig{
		Provider:       "mistral",
		MistralAPIKey:  "key",
		MistralModel:   "mistral-small",
		MistralBaseURL: "https://api.mistral.ai/v1/",
		Temperature:    0.2,
		MaxTokens:      1000,
		Timeout:        time.Second,
	}

	client, err := NewChatClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if client.Name() != "mistral" {
		t.Fatalf("got provider %q", client.Name())
	}

	cfg.Provider = "llama"
	if _, err := NewChatClient(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

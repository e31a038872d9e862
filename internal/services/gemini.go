package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

type geminiClient struct {
	client *genai.Client
	opts   ChatOptions
}

func NewGeminiClient(ctx context.Context, apiKey string, opts ChatOptions) (ChatClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		opts:   opts,
	}, nil
}

func (g *geminiClient) Name() string {
	return "gemini"
}

// Complete implements ChatClient.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, g.opts.Timeout)
	defer cancel()

	temperature := g.opts.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.opts.MaxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.opts.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text != "" {
		return text, nil
	}

	// Fall back to whatever text parts the candidates carry.
	var textParts []string
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				textParts = append(textParts, part.Text)
			}
		}
	}

	if len(textParts) > 0 {
		log.Warn().Int("parts", len(textParts)).Msg("Gemini response had no top-level text, using candidate parts")
		return strings.Join(textParts, "\n"), nil
	}

	return "", fmt.Errorf("no text content in response")
}

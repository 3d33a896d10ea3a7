package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator abstracts the generative-text backend so the service can
// be tested without network access.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

// Generation parameters per path. The customer chat favors speed and a
// conversational tone; the admin assistant is more analytical.
var (
	CustomerChatConfig = &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		TopK:            genai.Ptr[float32](40),
		MaxOutputTokens: 1024,
	}

	AdminAssistantConfig = &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		TopP:            genai.Ptr[float32](0.9),
		TopK:            genai.Ptr[float32](20),
		MaxOutputTokens: 2048,
	}
)

// GeminiClient generates text using Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed Generator.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends a prompt and returns the generated text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

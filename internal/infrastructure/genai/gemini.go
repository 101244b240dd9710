package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gemini "github.com/google/generative-ai-go/genai"
	"github.com/shopchat/backend/config"
	"github.com/shopchat/backend/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient generates text via Google's Gemini API
type GeminiClient struct {
	client      *gemini.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewGeminiClient creates a Gemini-backed text generator
func NewGeminiClient(ctx context.Context, cfg config.GenAIConfig) (*GeminiClient, error) {
	client, err := gemini.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Generate sends the prompt to Gemini and returns the response text
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	if c.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(c.maxTokens))
	}

	resp, err := model.GenerateContent(ctx, gemini.Text(prompt))
	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(gemini.Text); ok && string(txt) != "" {
				return string(txt), nil
			}
		}
	}

	return "", domain.ErrGenerationFailed
}

// classifyProviderError maps provider HTTP status codes onto domain sentinels
// so the delivery layer can distinguish quota from auth failures
func classifyProviderError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", domain.ErrAuthFailure, err)
		}
	}
	return err
}

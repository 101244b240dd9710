// Package genai provides the external text-generation providers used by the
// response composer. Two near-identical backends are supported; which one is
// active is purely a configuration decision, and the absence of an API key
// means no provider at all (the composer then runs template-only).
package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopchat/backend/config"
	"github.com/shopchat/backend/internal/domain"
)

// NewClient builds the configured text-generation provider.
// Returns (nil, nil) when no provider is configured or the API key is empty;
// callers treat a nil client as template-only mode.
func NewClient(ctx context.Context, cfg config.GenAIConfig) (domain.TextGenerator, error) {
	if cfg.Provider == "" || cfg.APIKey == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiClient(ctx, cfg)

	case "openai":
		return NewOpenAIClient(cfg), nil

	default:
		return nil, fmt.Errorf("unsupported genai provider: %s", cfg.Provider)
	}
}

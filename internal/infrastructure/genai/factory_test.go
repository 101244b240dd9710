package genai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"github.com/shopchat/backend/config"
	"github.com/shopchat/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("no provider means template-only", func(t *testing.T) {
		client, err := NewClient(ctx, config.GenAIConfig{})
		if err != nil {
			t.Fatalf("NewClient() error = %v, want nil", err)
		}
		if client != nil {
			t.Error("NewClient() returned a client for empty provider, want nil")
		}
	})

	t.Run("provider without key means template-only", func(t *testing.T) {
		client, err := NewClient(ctx, config.GenAIConfig{Provider: "gemini"})
		if err != nil {
			t.Fatalf("NewClient() error = %v, want nil", err)
		}
		if client != nil {
			t.Error("NewClient() returned a client without an API key, want nil")
		}
	})

	t.Run("openai provider builds a client", func(t *testing.T) {
		client, err := NewClient(ctx, config.GenAIConfig{
			Provider: "openai",
			APIKey:   "sk-test",
			Model:    "gpt-4o-mini",
		})
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		if client == nil {
			t.Fatal("NewClient() = nil, want an OpenAI client")
		}
		if _, ok := client.(*OpenAIClient); !ok {
			t.Errorf("NewClient() = %T, want *OpenAIClient", client)
		}
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		_, err := NewClient(ctx, config.GenAIConfig{Provider: "llama", APIKey: "x"})
		if err == nil {
			t.Error("NewClient() error = nil, want unsupported-provider error")
		}
	})
}

func TestClassifyProviderError(t *testing.T) {
	testCases := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "429 maps to quota",
			in:   &googleapi.Error{Code: 429, Message: "rate limited"},
			want: domain.ErrQuotaExceeded,
		},
		{
			name: "401 maps to auth",
			in:   &googleapi.Error{Code: 401, Message: "bad key"},
			want: domain.ErrAuthFailure,
		},
		{
			name: "403 maps to auth",
			in:   &googleapi.Error{Code: 403, Message: "forbidden"},
			want: domain.ErrAuthFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyProviderError(tc.in); !errors.Is(got, tc.want) {
				t.Errorf("classifyProviderError() = %v, want wrapped %v", got, tc.want)
			}
		})
	}

	t.Run("other errors pass through unwrapped", func(t *testing.T) {
		in := fmt.Errorf("connection refused")
		got := classifyProviderError(in)
		if got != in {
			t.Errorf("classifyProviderError() = %v, want the original error", got)
		}
		if errors.Is(got, domain.ErrQuotaExceeded) || errors.Is(got, domain.ErrAuthFailure) {
			t.Error("unclassified error must not match a domain sentinel")
		}
	})
}

func TestClassifyOpenAIError(t *testing.T) {
	t.Run("429 maps to quota", func(t *testing.T) {
		in := &openai.APIError{HTTPStatusCode: 429}
		if got := classifyOpenAIError(in); !errors.Is(got, domain.ErrQuotaExceeded) {
			t.Errorf("classifyOpenAIError() = %v, want wrapped ErrQuotaExceeded", got)
		}
	})

	t.Run("401 maps to auth", func(t *testing.T) {
		in := &openai.APIError{HTTPStatusCode: 401}
		if got := classifyOpenAIError(in); !errors.Is(got, domain.ErrAuthFailure) {
			t.Errorf("classifyOpenAIError() = %v, want wrapped ErrAuthFailure", got)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		in := errors.New("timeout")
		if got := classifyOpenAIError(in); got != in {
			t.Errorf("classifyOpenAIError() = %v, want the original error", got)
		}
	})
}

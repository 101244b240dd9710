package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SHOPCHAT_SERVER_PORT")
		os.Unsetenv("SHOPCHAT_SERVER_ENVIRONMENT")
		os.Unsetenv("SHOPCHAT_SEARCH_FLIPKART_BASE_URL")
		os.Unsetenv("SHOPCHAT_SEARCH_AMAZON_BASE_URL")
		os.Unsetenv("SHOPCHAT_SEARCH_INSTANT_ANSWER_URL")
		os.Unsetenv("SHOPCHAT_SEARCH_ADAPTER_LIMIT")
		os.Unsetenv("SHOPCHAT_SEARCH_COMBINED_CAP")
		os.Unsetenv("SHOPCHAT_SEARCH_INR_PER_USD")
		os.Unsetenv("SHOPCHAT_GENAI_PROVIDER")
		os.Unsetenv("SHOPCHAT_GENAI_API_KEY")
		os.Unsetenv("SHOPCHAT_GENAI_MODEL")
		os.Unsetenv("SHOPCHAT_CACHE_TTL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Search.FlipkartBaseURL != "https://www.flipkart.com" {
			t.Errorf("Search.FlipkartBaseURL = %s, want https://www.flipkart.com", cfg.Search.FlipkartBaseURL)
		}
		if cfg.Search.AmazonBaseURL != "https://www.amazon.in" {
			t.Errorf("Search.AmazonBaseURL = %s, want https://www.amazon.in", cfg.Search.AmazonBaseURL)
		}
		if cfg.Search.AdapterLimit != 4 {
			t.Errorf("Search.AdapterLimit = %d, want 4", cfg.Search.AdapterLimit)
		}
		if cfg.Search.CombinedCap != 8 {
			t.Errorf("Search.CombinedCap = %d, want 8", cfg.Search.CombinedCap)
		}
		if cfg.Search.INRPerUSD != 83.0 {
			t.Errorf("Search.INRPerUSD = %f, want 83", cfg.Search.INRPerUSD)
		}
		if cfg.GenAI.Provider != "" {
			t.Errorf("GenAI.Provider = %s, want empty (template-only mode)", cfg.GenAI.Provider)
		}
		if cfg.GenAI.Timeout != 30*time.Second {
			t.Errorf("GenAI.Timeout = %v, want 30s", cfg.GenAI.Timeout)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPCHAT_SERVER_PORT", "9090")
		os.Setenv("SHOPCHAT_SERVER_ENVIRONMENT", "production")
		os.Setenv("SHOPCHAT_GENAI_PROVIDER", "gemini")
		os.Setenv("SHOPCHAT_GENAI_API_KEY", "custom-api-key")
		os.Setenv("SHOPCHAT_GENAI_MODEL", "gemini-1.5-flash")
		os.Setenv("SHOPCHAT_CACHE_TTL", "10m")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.GenAI.Provider != "gemini" {
			t.Errorf("GenAI.Provider = %s, want gemini", cfg.GenAI.Provider)
		}
		if cfg.GenAI.APIKey != "custom-api-key" {
			t.Errorf("GenAI.APIKey = %s, want custom-api-key", cfg.GenAI.APIKey)
		}
		if cfg.GenAI.Model != "gemini-1.5-flash" {
			t.Errorf("GenAI.Model = %s, want gemini-1.5-flash", cfg.GenAI.Model)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
	})

	t.Run("fails validation for unknown provider", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPCHAT_GENAI_PROVIDER", "claude")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for unknown provider")
		}
	})

	t.Run("missing API key is not an error", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPCHAT_GENAI_PROVIDER", "gemini")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil (missing key means template-only mode)", err)
		}
		if cfg.GenAI.APIKey != "" {
			t.Errorf("GenAI.APIKey = %s, want empty", cfg.GenAI.APIKey)
		}
	})
}

func TestValidate(t *testing.T) {
	validSearch := SearchConfig{
		AdapterLimit: 4,
		CombinedCap:  8,
		INRPerUSD:    83.0,
	}

	t.Run("validates successfully with defaults", func(t *testing.T) {
		cfg := &Config{Search: validSearch}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("accepts both supported providers", func(t *testing.T) {
		for _, provider := range []string{"gemini", "openai"} {
			cfg := &Config{
				Search: validSearch,
				GenAI:  GenAIConfig{Provider: provider},
			}

			if err := validate(cfg); err != nil {
				t.Errorf("validate() error = %v for provider %s, want nil", err, provider)
			}
		}
	})

	t.Run("fails for unsupported provider", func(t *testing.T) {
		cfg := &Config{
			Search: validSearch,
			GenAI:  GenAIConfig{Provider: "anthropic"},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for unsupported provider")
		}
	})

	t.Run("fails for non-positive adapter limit", func(t *testing.T) {
		cfg := &Config{
			Search: SearchConfig{AdapterLimit: 0, CombinedCap: 8, INRPerUSD: 83.0},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero adapter limit")
		}
	})

	t.Run("fails when combined cap is below adapter limit", func(t *testing.T) {
		cfg := &Config{
			Search: SearchConfig{AdapterLimit: 4, CombinedCap: 2, INRPerUSD: 83.0},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for cap below adapter limit")
		}
	})

	t.Run("fails for non-positive conversion rate", func(t *testing.T) {
		cfg := &Config{
			Search: SearchConfig{AdapterLimit: 4, CombinedCap: 8, INRPerUSD: 0},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero conversion rate")
		}
	})
}

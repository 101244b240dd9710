package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is constructed once at process start and passed by reference into the
// components that need it; there is no ambient global state.
type Config struct {
	Server ServerConfig
	Search SearchConfig
	GenAI  GenAIConfig
	Cache  CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds product-search configuration
type SearchConfig struct {
	FlipkartBaseURL  string        `mapstructure:"flipkart_base_url"`
	AmazonBaseURL    string        `mapstructure:"amazon_base_url"`
	InstantAnswerURL string        `mapstructure:"instant_answer_url"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	AdapterLimit     int           `mapstructure:"adapter_limit"`
	CombinedCap      int           `mapstructure:"combined_cap"`

	// INRPerUSD is the conversion constant used by the legacy catalog search
	// to compare INR-magnitude price hints ("20-25k") against catalog prices
	// stored in USD. A deployment assumption, kept overridable.
	INRPerUSD float64 `mapstructure:"inr_per_usd"`
}

// GenAIConfig holds external text-generation provider configuration.
// An empty APIKey disables the provider and the composer runs in
// template-only mode.
type GenAIConfig struct {
	Provider    string        `mapstructure:"provider"` // "gemini" or "openai"
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopchat/")

	// Environment variable settings: SHOPCHAT_SERVER_PORT overrides server.port
	v.SetEnvPrefix("SHOPCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Search defaults
	v.SetDefault("search.flipkart_base_url", "https://www.flipkart.com")
	v.SetDefault("search.amazon_base_url", "https://www.amazon.in")
	v.SetDefault("search.instant_answer_url", "https://api.duckduckgo.com")
	v.SetDefault("search.fetch_timeout", "8s")
	v.SetDefault("search.adapter_limit", 4)
	v.SetDefault("search.combined_cap", 8)
	v.SetDefault("search.inr_per_usd", 83.0)

	// GenAI defaults (no provider configured means template-only responses)
	v.SetDefault("genai.provider", "")
	v.SetDefault("genai.api_key", "")
	v.SetDefault("genai.base_url", "")
	v.SetDefault("genai.model", "gemini-2.5-pro")
	v.SetDefault("genai.temperature", 0.7)
	v.SetDefault("genai.max_tokens", 1024)
	v.SetDefault("genai.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.GenAI.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("genai provider must be 'gemini' or 'openai', got: %s", config.GenAI.Provider)
	}

	if config.Search.AdapterLimit <= 0 {
		return fmt.Errorf("search adapter_limit must be positive, got: %d", config.Search.AdapterLimit)
	}

	if config.Search.CombinedCap < config.Search.AdapterLimit {
		return fmt.Errorf("search combined_cap (%d) must be at least adapter_limit (%d)",
			config.Search.CombinedCap, config.Search.AdapterLimit)
	}

	if config.Search.INRPerUSD <= 0 {
		return fmt.Errorf("search inr_per_usd must be positive, got: %f", config.Search.INRPerUSD)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// External service configurations
	Groq   GroqConfig
	Serper SerperConfig

	// Market data configuration
	Market MarketConfig

	// Pipeline configuration
	Pipeline PipelineConfig

	// HTTP configuration
	HTTP HTTPConfig
}

// GroqConfig holds Groq (language model) API configuration.
// Groq exposes an OpenAI-compatible chat-completions API.
type GroqConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Temperature       float64
	AnalysisMaxTokens int
	PicksMaxTokens    int
}

// SerperConfig holds Serper (web search) API configuration
type SerperConfig struct {
	APIKey  string
	BaseURL string
}

// MarketConfig holds market-data fetch parameters
type MarketConfig struct {
	Period   string // e.g. "1mo", "5d"
	Interval string // e.g. "1d", "1h"
}

// PipelineConfig holds analysis pipeline configuration
type PipelineConfig struct {
	TimeoutSeconds   int
	ConcurrencyLimit int
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Addr               string
	CORSAllowedOrigins string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Groq: GroqConfig{
			APIKey:            os.Getenv("GROQ_API_KEY"),
			BaseURL:           getEnvString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:             getEnvString("GROQ_MODEL", "llama-3.3-70b-versatile"),
			Temperature:       getEnvFloat("GROQ_TEMPERATURE", 0.7),
			AnalysisMaxTokens: getEnvInt("GROQ_ANALYSIS_MAX_TOKENS", 2000),
			PicksMaxTokens:    getEnvInt("GROQ_PICKS_MAX_TOKENS", 1000),
		},
		Serper: SerperConfig{
			APIKey:  os.Getenv("SERPER_API_KEY"),
			BaseURL: getEnvString("SERPER_BASE_URL", "https://google.serper.dev"),
		},
		Market: MarketConfig{
			Period:   getEnvString("MARKET_PERIOD", "1mo"),
			Interval: getEnvString("MARKET_INTERVAL", "1d"),
		},
		Pipeline: PipelineConfig{
			TimeoutSeconds:   getEnvInt("PIPELINE_TIMEOUT_SECONDS", 120),
			ConcurrencyLimit: getEnvInt("ANALYSIS_CONCURRENCY_LIMIT", 3),
		},
		HTTP: HTTPConfig{
			Addr:               getEnvString("SERVER_ADDR", ":8080"),
			CORSAllowedOrigins: getEnvString("CORS_ALLOWED_ORIGINS", "*"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Pipeline.TimeoutSeconds <= 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT_SECONDS must be positive, got %d", c.Pipeline.TimeoutSeconds)
	}
	if c.Pipeline.ConcurrencyLimit <= 0 {
		return fmt.Errorf("ANALYSIS_CONCURRENCY_LIMIT must be positive, got %d", c.Pipeline.ConcurrencyLimit)
	}
	if c.Groq.AnalysisMaxTokens <= 0 {
		return fmt.Errorf("GROQ_ANALYSIS_MAX_TOKENS must be positive, got %d", c.Groq.AnalysisMaxTokens)
	}
	if c.Groq.PicksMaxTokens <= 0 {
		return fmt.Errorf("GROQ_PICKS_MAX_TOKENS must be positive, got %d", c.Groq.PicksMaxTokens)
	}
	if c.Groq.Temperature < 0 || c.Groq.Temperature > 2 {
		return fmt.Errorf("GROQ_TEMPERATURE must be between 0 and 2, got %.2f", c.Groq.Temperature)
	}
	if c.Market.Period == "" {
		return fmt.Errorf("MARKET_PERIOD must not be empty")
	}
	if c.Market.Interval == "" {
		return fmt.Errorf("MARKET_INTERVAL must not be empty")
	}
	return nil
}

// HasGroq returns true if Groq configuration is available
func (c *Config) HasGroq() bool {
	return c.Groq.APIKey != ""
}

// HasSerper returns true if Serper configuration is available
func (c *Config) HasSerper() bool {
	return c.Serper.APIKey != ""
}

func getEnvString(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// NewTestConfig creates a Config with default values for testing
func NewTestConfig() *Config {
	return &Config{
		Groq: GroqConfig{
			APIKey:            "",
			BaseURL:           "https://api.groq.com/openai/v1",
			Model:             "llama-3.3-70b-versatile",
			Temperature:       0.7,
			AnalysisMaxTokens: 2000,
			PicksMaxTokens:    1000,
		},
		Serper: SerperConfig{
			APIKey:  "",
			BaseURL: "https://google.serper.dev",
		},
		Market: MarketConfig{
			Period:   "1mo",
			Interval: "1d",
		},
		Pipeline: PipelineConfig{
			TimeoutSeconds:   120,
			ConcurrencyLimit: 3,
		},
		HTTP: HTTPConfig{
			Addr:               ":8080",
			CORSAllowedOrigins: "*",
		},
	}
}

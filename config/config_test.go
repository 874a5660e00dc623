package config

import (
	"os"
	"testing"
)

// saveEnv saves current environment variables for restoration
func saveEnv(t *testing.T, keys []string) map[string]string {
	t.Helper()
	saved := make(map[string]string)
	for _, key := range keys {
		saved[key] = os.Getenv(key)
	}
	return saved
}

// restoreEnv restores previously saved environment variables
func restoreEnv(t *testing.T, saved map[string]string) {
	t.Helper()
	for key, val := range saved {
		if val == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, val)
		}
	}
}

// clearEnv clears environment variables
func clearEnv(t *testing.T, keys []string) {
	t.Helper()
	for _, key := range keys {
		os.Unsetenv(key)
	}
}

var allEnvKeys = []string{
	"GROQ_API_KEY",
	"GROQ_BASE_URL",
	"GROQ_MODEL",
	"GROQ_TEMPERATURE",
	"GROQ_ANALYSIS_MAX_TOKENS",
	"GROQ_PICKS_MAX_TOKENS",
	"SERPER_API_KEY",
	"SERPER_BASE_URL",
	"MARKET_PERIOD",
	"MARKET_INTERVAL",
	"PIPELINE_TIMEOUT_SECONDS",
	"ANALYSIS_CONCURRENCY_LIMIT",
	"SERVER_ADDR",
	"CORS_ALLOWED_ORIGINS",
}

func TestLoad_Defaults(t *testing.T) {
	saved := saveEnv(t, allEnvKeys)
	defer restoreEnv(t, saved)
	clearEnv(t, allEnvKeys)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Groq.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("Groq.BaseURL = %s", cfg.Groq.BaseURL)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Groq.Model = %s", cfg.Groq.Model)
	}
	if cfg.Groq.Temperature != 0.7 {
		t.Errorf("Groq.Temperature = %v", cfg.Groq.Temperature)
	}
	if cfg.Groq.AnalysisMaxTokens != 2000 {
		t.Errorf("Groq.AnalysisMaxTokens = %d", cfg.Groq.AnalysisMaxTokens)
	}
	if cfg.Groq.PicksMaxTokens != 1000 {
		t.Errorf("Groq.PicksMaxTokens = %d", cfg.Groq.PicksMaxTokens)
	}
	if cfg.Serper.BaseURL != "https://google.serper.dev" {
		t.Errorf("Serper.BaseURL = %s", cfg.Serper.BaseURL)
	}
	if cfg.Market.Period != "1mo" {
		t.Errorf("Market.Period = %s", cfg.Market.Period)
	}
	if cfg.Market.Interval != "1d" {
		t.Errorf("Market.Interval = %s", cfg.Market.Interval)
	}
	if cfg.Pipeline.TimeoutSeconds != 120 {
		t.Errorf("Pipeline.TimeoutSeconds = %d", cfg.Pipeline.TimeoutSeconds)
	}
	if cfg.Pipeline.ConcurrencyLimit != 3 {
		t.Errorf("Pipeline.ConcurrencyLimit = %d", cfg.Pipeline.ConcurrencyLimit)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %s", cfg.HTTP.Addr)
	}
	if cfg.HTTP.CORSAllowedOrigins != "*" {
		t.Errorf("HTTP.CORSAllowedOrigins = %s", cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	saved := saveEnv(t, allEnvKeys)
	defer restoreEnv(t, saved)
	clearEnv(t, allEnvKeys)

	os.Setenv("GROQ_API_KEY", "gsk-test")
	os.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	os.Setenv("GROQ_TEMPERATURE", "0.2")
	os.Setenv("SERPER_API_KEY", "serper-test")
	os.Setenv("MARKET_PERIOD", "3mo")
	os.Setenv("PIPELINE_TIMEOUT_SECONDS", "60")
	os.Setenv("SERVER_ADDR", ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Groq.APIKey != "gsk-test" {
		t.Errorf("Groq.APIKey = %s", cfg.Groq.APIKey)
	}
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("Groq.Model = %s", cfg.Groq.Model)
	}
	if cfg.Groq.Temperature != 0.2 {
		t.Errorf("Groq.Temperature = %v", cfg.Groq.Temperature)
	}
	if cfg.Market.Period != "3mo" {
		t.Errorf("Market.Period = %s", cfg.Market.Period)
	}
	if cfg.Pipeline.TimeoutSeconds != 60 {
		t.Errorf("Pipeline.TimeoutSeconds = %d", cfg.Pipeline.TimeoutSeconds)
	}
	if cfg.HTTP.Addr != ":9000" {
		t.Errorf("HTTP.Addr = %s", cfg.HTTP.Addr)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewTestConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("test config should validate, got %v", err)
	}

	bad := NewTestConfig()
	bad.Pipeline.TimeoutSeconds = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero timeout")
	}

	bad = NewTestConfig()
	bad.Groq.Temperature = 3.5
	if err := bad.Validate(); err == nil {
		t.Error("expected error for out-of-range temperature")
	}

	bad = NewTestConfig()
	bad.Market.Period = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty period")
	}
}

func TestHasProviders(t *testing.T) {
	cfg := NewTestConfig()
	if cfg.HasGroq() {
		t.Error("HasGroq should be false without an API key")
	}
	if cfg.HasSerper() {
		t.Error("HasSerper should be false without an API key")
	}

	cfg.Groq.APIKey = "x"
	cfg.Serper.APIKey = "y"
	if !cfg.HasGroq() || !cfg.HasSerper() {
		t.Error("provider checks should be true with keys set")
	}
}

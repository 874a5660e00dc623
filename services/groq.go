package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	appconfig "stock-insight/config"
	"stock-insight/observability"
)

// groqClient defines the interface for Groq API calls (for testing)
type groqClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// groqClientWrapper wraps the openai.Client to implement our interface.
// Groq exposes an OpenAI-compatible chat completions endpoint, so the
// same client works with a different base URL.
type groqClientWrapper struct {
	client openai.Client
}

func (w *groqClientWrapper) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return w.client.Chat.Completions.New(ctx, params)
}

// GroqService handles communication with the Groq inference API
type GroqService struct {
	client      groqClient
	model       string
	temperature float64
}

// NewGroqService creates a new GroqService instance
func NewGroqService(cfg *appconfig.Config) (*GroqService, error) {
	if cfg.Groq.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.Groq.APIKey),
		option.WithBaseURL(cfg.Groq.BaseURL),
	)

	return &GroqService{
		client:      &groqClientWrapper{client: client},
		model:       cfg.Groq.Model,
		temperature: cfg.Groq.Temperature,
	}, nil
}

// newGroqServiceWithClient creates a GroqService with a custom client (for testing)
func newGroqServiceWithClient(client groqClient, model string, temperature float64) *GroqService {
	return &GroqService{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

// InvokeWithPrompt sends a prompt to Groq and returns the response text
func (s *GroqService) InvokeWithPrompt(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	metrics := observability.GetMetrics()
	metrics.RecordExternalAPIRequest(BreakerGroq, "invoke")
	timer := metrics.NewTimer()

	result, err := WithCircuitBreaker(ctx, BreakerGroq, func() (string, error) {
		params := openai.ChatCompletionNewParams{
			Model:       shared.ChatModel(s.model),
			MaxTokens:   openai.Int(int64(maxTokens)),
			Temperature: openai.Float(s.temperature),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userPrompt),
			},
		}

		completion, err := s.client.CreateChatCompletion(ctx, params)
		if err != nil {
			return "", fmt.Errorf("failed to invoke Groq: %w", err)
		}

		if len(completion.Choices) == 0 {
			return "", fmt.Errorf("empty response from Groq")
		}

		return completion.Choices[0].Message.Content, nil
	})

	timer.ObserveExternalAPI(BreakerGroq, "invoke")
	if err != nil {
		metrics.RecordExternalAPIError(BreakerGroq, "invoke", categorizeAPIError(err))
	}
	return result, err
}

// categorizeAPIError categorizes an error for metrics purposes
func categorizeAPIError(err error) string {
	if err == nil {
		return "none"
	}
	errStr := err.Error()
	switch {
	case contains(errStr, "timeout", "deadline"):
		return "timeout"
	case contains(errStr, "rate limit", "429"):
		return "rate_limit"
	case contains(errStr, "unauthorized", "401"):
		return "auth_error"
	case contains(errStr, "connection", "network"):
		return "connection_error"
	default:
		return "unknown"
	}
}

// contains checks if the string contains any of the substrings
func contains(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if len(s) >= len(sub) {
			for i := 0; i <= len(s)-len(sub); i++ {
				if s[i:i+len(sub)] == sub {
					return true
				}
			}
		}
	}
	return false
}

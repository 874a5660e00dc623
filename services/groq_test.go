package services

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
)

// mockGroqClient is a mock implementation of groqClient
type mockGroqClient struct {
	response   *openai.ChatCompletion
	err        error
	lastParams openai.ChatCompletionNewParams
}

func (m *mockGroqClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func completionWithText(text string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: text}},
		},
	}
}

func TestGroqService_InvokeWithPrompt(t *testing.T) {
	SetGlobalRegistry(NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig))

	mock := &mockGroqClient{response: completionWithText("detailed analysis")}
	service := newGroqServiceWithClient(mock, "llama-3.3-70b-versatile", 0.7)

	result, err := service.InvokeWithPrompt(context.Background(), "system", "user prompt", 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "detailed analysis" {
		t.Errorf("result = %q, want 'detailed analysis'", result)
	}

	if string(mock.lastParams.Model) != "llama-3.3-70b-versatile" {
		t.Errorf("model = %s, want llama-3.3-70b-versatile", mock.lastParams.Model)
	}
	if mock.lastParams.MaxTokens.Value != 2000 {
		t.Errorf("maxTokens = %d, want 2000", mock.lastParams.MaxTokens.Value)
	}
	if mock.lastParams.Temperature.Value != 0.7 {
		t.Errorf("temperature = %v, want 0.7", mock.lastParams.Temperature.Value)
	}
	if len(mock.lastParams.Messages) != 2 {
		t.Errorf("len(messages) = %d, want 2", len(mock.lastParams.Messages))
	}
}

func TestGroqService_InvokeWithPrompt_Error(t *testing.T) {
	SetGlobalRegistry(NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig))

	mock := &mockGroqClient{err: errors.New("rate limit exceeded")}
	service := newGroqServiceWithClient(mock, "llama-3.3-70b-versatile", 0.7)

	_, err := service.InvokeWithPrompt(context.Background(), "system", "user", 1000)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGroqService_InvokeWithPrompt_EmptyChoices(t *testing.T) {
	SetGlobalRegistry(NewCircuitBreakerRegistry(DefaultCircuitBreakerConfig))

	mock := &mockGroqClient{response: &openai.ChatCompletion{}}
	service := newGroqServiceWithClient(mock, "llama-3.3-70b-versatile", 0.7)

	_, err := service.InvokeWithPrompt(context.Background(), "system", "user", 1000)
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCategorizeAPIError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{errors.New("context deadline exceeded"), "timeout"},
		{errors.New("429 rate limit"), "rate_limit"},
		{errors.New("401 unauthorized"), "auth_error"},
		{errors.New("connection refused"), "connection_error"},
		{errors.New("something odd"), "unknown"},
	}

	for _, tt := range tests {
		if got := categorizeAPIError(tt.err); got != tt.want {
			t.Errorf("categorizeAPIError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

package services

import (
	"context"

	"stock-insight/models"
)

// GroqServiceInterface defines the interface for LLM inference operations
type GroqServiceInterface interface {
	InvokeWithPrompt(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// SerperServiceInterface defines the interface for web search operations
type SerperServiceInterface interface {
	Search(ctx context.Context, query string, num int) (*SearchBundle, error)
	News(ctx context.Context, query string, num int) ([]models.NewsItem, error)
}

// MarketDataServiceInterface defines the interface for market data operations
type MarketDataServiceInterface interface {
	History(ctx context.Context, symbol string) ([]models.Bar, error)
	Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)
}

// Compile-time interface verification
var _ GroqServiceInterface = (*GroqService)(nil)
var _ SerperServiceInterface = (*SerperService)(nil)
var _ MarketDataServiceInterface = (*MarketDataService)(nil)

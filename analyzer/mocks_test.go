package analyzer

import (
	"context"
	"sync"

	"stock-insight/models"
	"stock-insight/services"
)

// mockSearchService is a mock implementation of services.SerperServiceInterface
// with per-query canned responses
type mockSearchService struct {
	mu            sync.Mutex
	searchBundles map[string]*services.SearchBundle
	searchErr     error
	newsItems     []models.NewsItem
	newsErr       error
	searchQueries []string
	newsQueries   []string
}

func (m *mockSearchService) Search(ctx context.Context, query string, num int) (*services.SearchBundle, error) {
	m.mu.Lock()
	m.searchQueries = append(m.searchQueries, query)
	m.mu.Unlock()

	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if bundle, ok := m.searchBundles[query]; ok {
		return bundle, nil
	}
	return &services.SearchBundle{}, nil
}

func (m *mockSearchService) News(ctx context.Context, query string, num int) ([]models.NewsItem, error) {
	m.mu.Lock()
	m.newsQueries = append(m.newsQueries, query)
	m.mu.Unlock()

	if m.newsErr != nil {
		return nil, m.newsErr
	}
	return m.newsItems, nil
}

// mockMarketService is a mock implementation of services.MarketDataServiceInterface
type mockMarketService struct {
	bars            []models.Bar
	historyErr      error
	fundamentals    models.Fundamentals
	fundamentalsErr error
}

func (m *mockMarketService) History(ctx context.Context, symbol string) ([]models.Bar, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return m.bars, nil
}

func (m *mockMarketService) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	if m.fundamentalsErr != nil {
		return nil, m.fundamentalsErr
	}
	return m.fundamentals, nil
}

// mockLLMService is a mock implementation of services.GroqServiceInterface
type mockLLMService struct {
	response      string
	err           error
	lastSystem    string
	lastUser      string
	lastMaxTokens int
	invocations   int
}

func (m *mockLLMService) InvokeWithPrompt(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m.invocations++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	m.lastMaxTokens = maxTokens
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockResolver is a mock implementation of SymbolResolverInterface
type mockResolver struct {
	symbol string
	found  bool
}

func (m *mockResolver) Resolve(ctx context.Context, raw string) (string, bool) {
	return m.symbol, m.found
}

// mockIntelGatherer is a mock implementation of IntelGathererInterface
type mockIntelGatherer struct {
	intel           models.WebIntelligence
	lastSymbol      string
	lastCompanyName string
}

func (m *mockIntelGatherer) Gather(ctx context.Context, symbol, companyName string) models.WebIntelligence {
	m.lastSymbol = symbol
	m.lastCompanyName = companyName
	m.intel.CompanyName = companyName
	return m.intel
}

// mockInsightGenerator is a mock implementation of InsightGeneratorInterface
type mockInsightGenerator struct {
	analysis   string
	picks      string
	lastPrompt string
}

func (m *mockInsightGenerator) Generate(ctx context.Context, prompt string) string {
	m.lastPrompt = prompt
	return m.analysis
}

func (m *mockInsightGenerator) TopPicks(ctx context.Context) string {
	return m.picks
}

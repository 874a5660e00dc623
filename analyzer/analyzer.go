package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"stock-insight/models"
	"stock-insight/observability"
	"stock-insight/services"
)

// SymbolResolverInterface defines the interface for symbol resolution
type SymbolResolverInterface interface {
	Resolve(ctx context.Context, raw string) (string, bool)
}

// IntelGathererInterface defines the interface for web intelligence aggregation
type IntelGathererInterface interface {
	Gather(ctx context.Context, symbol, companyName string) models.WebIntelligence
}

// InsightGeneratorInterface defines the interface for LLM analysis generation
type InsightGeneratorInterface interface {
	Generate(ctx context.Context, prompt string) string
	TopPicks(ctx context.Context) string
}

// Analyzer runs the full per-query pipeline: resolve the symbol, fetch
// market data and web intelligence, derive indicators and the chart,
// and generate the analysis text. Everything it produces is
// request-scoped; nothing is cached or shared across queries.
type Analyzer struct {
	resolver SymbolResolverInterface
	market   services.MarketDataServiceInterface
	intel    IntelGathererInterface
	insight  InsightGeneratorInterface
}

// NewAnalyzer creates a new Analyzer instance
func NewAnalyzer(resolver SymbolResolverInterface, market services.MarketDataServiceInterface, intel IntelGathererInterface, insight InsightGeneratorInterface) *Analyzer {
	return &Analyzer{
		resolver: resolver,
		market:   market,
		intel:    intel,
		insight:  insight,
	}
}

// Analyze resolves a free-text query and produces a full stock report.
// The only hard failures are ErrSymbolNotFound and ErrNoData; every
// other degradation (missing fundamentals, failed searches, LLM errors)
// is absorbed into a partial report.
func (a *Analyzer) Analyze(ctx context.Context, query string) (*models.StockReport, error) {
	logger := observability.WithQuery(query)

	symbol, ok := a.resolver.Resolve(ctx, query)
	if !ok {
		return nil, fmt.Errorf("resolving %q: %w", query, ErrSymbolNotFound)
	}
	logger.Info("symbol resolved", "symbol", symbol)

	fundamentals, err := a.market.Fundamentals(ctx, symbol)
	if err != nil {
		logger.Warn("fundamentals fetch failed", "symbol", symbol, "error", err)
		fundamentals = models.Fundamentals{}
	}

	companyName := fundamentals.StrOr("longName", symbol)

	// History and web intelligence are independent; fetch both at once.
	var wg sync.WaitGroup
	var bars []models.Bar
	var historyErr error
	var intel models.WebIntelligence

	wg.Add(1)
	go func() {
		defer wg.Done()
		bars, historyErr = a.market.History(ctx, symbol)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		intel = a.intel.Gather(ctx, symbol, companyName)
	}()

	wg.Wait()

	if historyErr != nil {
		logger.Warn("history fetch failed", "symbol", symbol, "error", historyErr)
		bars = nil
	}

	if len(bars) == 0 && fundamentals.IsEmpty() {
		return nil, fmt.Errorf("fetching %s: %w", symbol, ErrNoData)
	}

	indicators := DeriveIndicators(bars, fundamentals)
	chart := BuildChart(bars, symbol)
	prompt := BuildAnalysisPrompt(symbol, indicators, fundamentals, intel)
	analysis := a.insight.Generate(ctx, prompt)

	return &models.StockReport{
		ID:           uuid.New(),
		Symbol:       symbol,
		CompanyName:  companyName,
		Profile:      buildProfile(fundamentals),
		Fundamentals: fundamentals,
		Indicators:   indicators,
		Chart:        chart,
		Intel:        intel,
		Analysis:     analysis,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// TopPicks produces the daily recommendation text
func (a *Analyzer) TopPicks(ctx context.Context) string {
	return a.insight.TopPicks(ctx)
}

// buildProfile extracts the descriptive company fields from a
// fundamentals snapshot
func buildProfile(f models.Fundamentals) models.CompanyProfile {
	return models.CompanyProfile{
		LongName:  f.Str("longName"),
		Sector:    f.Str("sector"),
		Industry:  f.Str("industry"),
		Website:   f.Str("website"),
		City:      f.Str("city"),
		Country:   f.Str("country"),
		Employees: int64(f.Num("fullTimeEmployees")),
		Summary:   f.Str("longBusinessSummary"),
	}
}

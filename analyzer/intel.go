package analyzer

import (
	"context"
	"fmt"
	"sync"

	"stock-insight/models"
	"stock-insight/observability"
	"stock-insight/services"
)

// generalSearchQueries are the fixed general-search templates, each
// parameterized by company name (and the first also by symbol)
var generalSearchQueries = []string{
	"%s %s stock analysis India",
	"%s financial results earnings India",
	"%s stock price target India",
	"%s news latest India",
}

const (
	generalSearchCount = 10
	newsSearchCount    = 20
)

// IntelGatherer aggregates web search and news results for one stock
type IntelGatherer struct {
	search services.SerperServiceInterface
}

// NewIntelGatherer creates a new IntelGatherer instance
func NewIntelGatherer(search services.SerperServiceInterface) *IntelGatherer {
	return &IntelGatherer{search: search}
}

// Gather issues four general-search queries plus one dedicated news
// query, all in parallel, and aggregates the results into a bounded
// set. A failed call contributes zero items; the aggregation order is
// deterministic regardless of call completion order: general-search
// news in query order, then dedicated news, then organic results in
// query order.
func (g *IntelGatherer) Gather(ctx context.Context, symbol, companyName string) models.WebIntelligence {
	intel := models.WebIntelligence{
		News:          []models.NewsItem{},
		SearchResults: []models.SearchResult{},
		CompanyName:   companyName,
	}
	if g.search == nil {
		return intel
	}

	logger := observability.WithSymbol(symbol)

	queries := make([]string, len(generalSearchQueries))
	queries[0] = fmt.Sprintf(generalSearchQueries[0], companyName, symbol)
	for i := 1; i < len(generalSearchQueries); i++ {
		queries[i] = fmt.Sprintf(generalSearchQueries[i], companyName)
	}

	var wg sync.WaitGroup
	bundles := make([]*services.SearchBundle, len(queries))
	var dedicatedNews []models.NewsItem

	for i, query := range queries {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()
			bundle, err := g.search.Search(ctx, q, generalSearchCount)
			if err != nil {
				logger.Warn("search query failed", "query", q, "error", err)
				return
			}
			bundles[idx] = bundle
		}(i, query)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		newsQuery := fmt.Sprintf("%s %s stock news India", companyName, symbol)
		items, err := g.search.News(ctx, newsQuery, newsSearchCount)
		if err != nil {
			logger.Warn("news query failed", "query", newsQuery, "error", err)
			return
		}
		dedicatedNews = items
	}()

	wg.Wait()

	for _, bundle := range bundles {
		if bundle == nil {
			continue
		}
		intel.News = append(intel.News, bundle.News...)
		intel.SearchResults = append(intel.SearchResults, bundle.Organic...)
	}
	intel.News = append(intel.News, dedicatedNews...)

	if len(intel.News) > models.MaxNewsItems {
		intel.News = intel.News[:models.MaxNewsItems]
	}
	if len(intel.SearchResults) > models.MaxSearchResults {
		intel.SearchResults = intel.SearchResults[:models.MaxSearchResults]
	}

	return intel
}

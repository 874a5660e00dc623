package resolver

import (
	"context"
	"regexp"
	"strings"

	"stock-insight/observability"
	"stock-insight/services"
)

// symbolPattern matches an NSE ticker embedded in search result text
var symbolPattern = regexp.MustCompile(`([A-Z]+\.NS)`)

// Resolver turns free-text company names into Yahoo-style NSE/BSE
// ticker symbols. Resolution tries, in order: an explicit exchange
// suffix in the input, an exact alias lookup, a substring scan of the
// alias table, and finally a web search for the symbol.
type Resolver struct {
	search services.SerperServiceInterface
}

// NewResolver creates a new Resolver. The search service may be nil,
// in which case the web-search fallback is skipped.
func NewResolver(search services.SerperServiceInterface) *Resolver {
	return &Resolver{search: search}
}

// Resolve maps a raw query to a ticker symbol. The boolean is false
// when no resolution step produced a symbol; search failures are
// treated as a miss, never as an error.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, bool) {
	metrics := observability.GetMetrics()

	query := strings.TrimSpace(raw)
	if query == "" {
		metrics.RecordResolution("not_found")
		return "", false
	}

	upper := strings.ToUpper(query)
	if strings.Contains(upper, ".NS") || strings.Contains(upper, ".BO") {
		metrics.RecordResolution("suffix")
		return upper, true
	}

	lower := strings.ToLower(query)
	for _, alias := range stockAliases {
		if alias.Name == lower {
			metrics.RecordResolution("alias")
			return alias.Symbol, true
		}
	}

	for _, alias := range stockAliases {
		if strings.Contains(alias.Name, lower) || strings.Contains(lower, alias.Name) {
			metrics.RecordResolution("substring")
			return alias.Symbol, true
		}
	}

	if symbol, ok := r.searchSymbol(ctx, query); ok {
		metrics.RecordResolution("search")
		return symbol, true
	}

	metrics.RecordResolution("not_found")
	return "", false
}

// searchSymbol asks the web search service for the ticker and extracts
// the first NSE symbol found in the results
func (r *Resolver) searchSymbol(ctx context.Context, query string) (string, bool) {
	if r.search == nil {
		return "", false
	}

	logger := observability.WithQuery(query)

	bundle, err := r.search.Search(ctx, query+" stock symbol NSE BSE India", 5)
	if err != nil {
		logger.Warn("symbol search failed", "error", err)
		return "", false
	}

	for _, result := range bundle.Organic {
		text := strings.ToUpper(result.Title + " " + result.Snippet)
		if match := symbolPattern.FindString(text); match != "" {
			return match, true
		}
	}

	return "", false
}

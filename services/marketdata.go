package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	appconfig "stock-insight/config"
	"stock-insight/models"
	"stock-insight/observability"
)

const quoteSummaryBaseURL = "https://query1.finance.yahoo.com"

// quoteSummaryModules are the Yahoo quoteSummary modules we rely on for
// company profile and valuation fields.
const quoteSummaryModules = "price,summaryDetail,assetProfile,defaultKeyStatistics"

// MarketDataService fetches price history and fundamentals from Yahoo
// Finance. History comes through the finance-go chart API; fundamentals
// come from the quoteSummary endpoint, which finance-go does not cover.
type MarketDataService struct {
	rest     *resty.Client
	period   string
	interval string
}

// NewMarketDataService creates a new MarketDataService instance
func NewMarketDataService(cfg *appconfig.Config) *MarketDataService {
	rest := resty.New().
		SetBaseURL(quoteSummaryBaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; stock-insight/1.0)")

	return &MarketDataService{
		rest:     rest,
		period:   cfg.Market.Period,
		interval: cfg.Market.Interval,
	}
}

// History returns daily bars for the configured lookback period.
// An empty slice with a nil error means the symbol exists but Yahoo
// returned no candles for the window.
func (s *MarketDataService) History(ctx context.Context, symbol string) ([]models.Bar, error) {
	metrics := observability.GetMetrics()
	metrics.RecordExternalAPIRequest(BreakerYahoo, "history")
	timer := metrics.NewTimer()

	result, err := WithCircuitBreaker(ctx, BreakerYahoo, func() ([]models.Bar, error) {
		start := periodStart(s.period, time.Now())
		end := time.Now()

		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: intervalValue(s.interval),
		}

		iter := chart.Get(params)

		bars := make([]models.Bar, 0)
		for iter.Next() {
			bar := iter.Bar()
			bars = append(bars, models.Bar{
				Timestamp: time.Unix(int64(bar.Timestamp), 0),
				Open:      bar.Open,
				High:      bar.High,
				Low:       bar.Low,
				Close:     bar.Close,
				Volume:    int64(bar.Volume),
			})
		}

		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("failed to get history for %s: %w", symbol, err)
		}

		return bars, nil
	})

	timer.ObserveExternalAPI(BreakerYahoo, "history")
	if err != nil {
		metrics.RecordExternalAPIError(BreakerYahoo, "history", categorizeAPIError(err))
	}
	return result, err
}

// quoteSummaryResponse mirrors the Yahoo quoteSummary envelope. Each
// module is a loose map because field values are either scalars or
// {"raw": x, "fmt": "..."} wrappers.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]map[string]interface{} `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Fundamentals returns the merged, flattened quoteSummary fields for a
// symbol. A missing or partial response yields an empty or partial map
// with a nil error; callers degrade gracefully on absent keys.
func (s *MarketDataService) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	metrics := observability.GetMetrics()
	metrics.RecordExternalAPIRequest(BreakerYahoo, "fundamentals")
	timer := metrics.NewTimer()

	result, err := WithCircuitBreaker(ctx, BreakerYahoo, func() (models.Fundamentals, error) {
		var parsed quoteSummaryResponse
		resp, err := s.rest.R().
			SetContext(ctx).
			SetQueryParam("modules", quoteSummaryModules).
			SetResult(&parsed).
			Get("/v10/finance/quoteSummary/" + symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to get fundamentals for %s: %w", symbol, err)
		}
		if resp.StatusCode() == 404 {
			return models.Fundamentals{}, nil
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("quoteSummary for %s returned status %d", symbol, resp.StatusCode())
		}
		if apiErr := parsed.QuoteSummary.Error; apiErr != nil {
			return nil, fmt.Errorf("quoteSummary for %s: %s: %s", symbol, apiErr.Code, apiErr.Description)
		}
		if len(parsed.QuoteSummary.Result) == 0 {
			return models.Fundamentals{}, nil
		}

		return flattenQuoteSummary(parsed.QuoteSummary.Result[0]), nil
	})

	timer.ObserveExternalAPI(BreakerYahoo, "fundamentals")
	if err != nil {
		metrics.RecordExternalAPIError(BreakerYahoo, "fundamentals", categorizeAPIError(err))
	}
	return result, err
}

// flattenQuoteSummary merges all modules of one quoteSummary result
// into a single flat map, unwrapping {"raw": x, "fmt": y} values.
// Later modules do not overwrite keys already set by earlier ones in
// the canonical module order, so price-level fields win.
func flattenQuoteSummary(modules map[string]map[string]interface{}) models.Fundamentals {
	out := models.Fundamentals{}
	for _, name := range []string{"price", "summaryDetail", "defaultKeyStatistics", "assetProfile"} {
		module, ok := modules[name]
		if !ok {
			continue
		}
		for key, value := range module {
			if _, exists := out[key]; exists {
				continue
			}
			if unwrapped, ok := unwrapRaw(value); ok {
				out[key] = unwrapped
			}
		}
	}
	return out
}

// unwrapRaw extracts the usable value from a quoteSummary field. Fields
// are either plain scalars or maps carrying a "raw" machine value next
// to a "fmt" display string.
func unwrapRaw(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		raw, ok := v["raw"]
		if !ok {
			return nil, false
		}
		return raw, true
	case string, float64, bool:
		return v, true
	default:
		return nil, false
	}
}

// periodStart maps a yfinance-style period string to a start time
// relative to now. Unknown periods fall back to one month.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "5d":
		return now.AddDate(0, 0, -5)
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// intervalValue maps a yfinance-style interval string to the chart API
// interval. Unknown intervals fall back to daily.
func intervalValue(interval string) datetime.Interval {
	switch interval {
	case "1d":
		return datetime.OneDay
	case "1h":
		return datetime.OneHour
	case "5m":
		return datetime.FiveMins
	case "15m":
		return datetime.FifteenMins
	default:
		return datetime.OneDay
	}
}

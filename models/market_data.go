package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar represents OHLCV price data for one sampling interval
type Bar struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
}

// Fundamentals is a flexible snapshot of descriptive and valuation fields
// as returned by the market-data provider. The provider response is
// partial by nature, so every field access goes through a defaulted
// accessor; callers must never assume a key is present.
type Fundamentals map[string]interface{}

// IsEmpty reports whether the snapshot carries no data at all
func (f Fundamentals) IsEmpty() bool {
	return len(f) == 0
}

// Has reports whether the provider returned the named field
func (f Fundamentals) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Num returns the named field as a float64, or 0 when absent or non-numeric
func (f Fundamentals) Num(key string) float64 {
	return f.NumOr(key, 0)
}

// NumOr returns the named field as a float64, or def when absent or non-numeric
func (f Fundamentals) NumOr(key string, def float64) float64 {
	v, ok := f[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Str returns the named field as a string, or "" when absent or non-string
func (f Fundamentals) Str(key string) string {
	return f.StrOr(key, "")
}

// StrOr returns the named field as a string, or def when absent or non-string
func (f Fundamentals) StrOr(key, def string) string {
	if v, ok := f[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// IndicatorSet holds the indicators derived from a price series and a
// fundamentals snapshot for a single query. Derived values are
// request-scoped and recomputed on every query, never cached.
type IndicatorSet struct {
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	SMA20         float64 `json:"sma_20"`
	SMA50         float64 `json:"sma_50"`
	Volume        float64 `json:"volume"`
	AvgVolume20   float64 `json:"avg_volume_20"`
	Volatility    float64 `json:"volatility"`
}

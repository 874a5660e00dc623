package services

import (
	"testing"
	"time"

	"github.com/piquette/finance-go/datetime"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
	}{
		{"5d", now.AddDate(0, 0, -5)},
		{"1mo", now.AddDate(0, -1, 0)},
		{"3mo", now.AddDate(0, -3, 0)},
		{"6mo", now.AddDate(0, -6, 0)},
		{"1y", now.AddDate(-1, 0, 0)},
		{"5y", now.AddDate(-5, 0, 0)},
		{"bogus", now.AddDate(0, -1, 0)},
	}

	for _, tt := range tests {
		if got := periodStart(tt.period, now); !got.Equal(tt.want) {
			t.Errorf("periodStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestIntervalValue(t *testing.T) {
	tests := []struct {
		interval string
		want     datetime.Interval
	}{
		{"1d", datetime.OneDay},
		{"1h", datetime.OneHour},
		{"5m", datetime.FiveMins},
		{"15m", datetime.FifteenMins},
		{"bogus", datetime.OneDay},
	}

	for _, tt := range tests {
		if got := intervalValue(tt.interval); got != tt.want {
			t.Errorf("intervalValue(%q) = %v, want %v", tt.interval, got, tt.want)
		}
	}
}

func TestUnwrapRaw(t *testing.T) {
	if v, ok := unwrapRaw(map[string]interface{}{"raw": 2456.75, "fmt": "2,456.75"}); !ok || v != 2456.75 {
		t.Errorf("unwrapRaw(raw map) = %v, %v", v, ok)
	}
	if v, ok := unwrapRaw("Energy"); !ok || v != "Energy" {
		t.Errorf("unwrapRaw(string) = %v, %v", v, ok)
	}
	if v, ok := unwrapRaw(1.23); !ok || v != 1.23 {
		t.Errorf("unwrapRaw(float) = %v, %v", v, ok)
	}
	if _, ok := unwrapRaw(map[string]interface{}{"fmt": "no raw"}); ok {
		t.Error("unwrapRaw(map without raw) should not be ok")
	}
	if _, ok := unwrapRaw([]interface{}{1, 2}); ok {
		t.Error("unwrapRaw(slice) should not be ok")
	}
	if _, ok := unwrapRaw(nil); ok {
		t.Error("unwrapRaw(nil) should not be ok")
	}
}

func TestFlattenQuoteSummary(t *testing.T) {
	modules := map[string]map[string]interface{}{
		"price": {
			"regularMarketPrice": map[string]interface{}{"raw": 2456.75, "fmt": "2,456.75"},
			"longName":           "Reliance Industries Limited",
			"marketCap":          map[string]interface{}{"raw": 1.66e13},
		},
		"summaryDetail": {
			"previousClose": map[string]interface{}{"raw": 2440.0},
			"marketCap":     map[string]interface{}{"raw": 999.0}, // must not win over price module
		},
		"assetProfile": {
			"sector":   "Energy",
			"industry": "Oil & Gas Refining & Marketing",
			"website":  "https://www.ril.com",
		},
		"defaultKeyStatistics": {
			"beta": map[string]interface{}{"raw": 1.1},
		},
	}

	flat := flattenQuoteSummary(modules)

	if flat.Num("regularMarketPrice") != 2456.75 {
		t.Errorf("regularMarketPrice = %v", flat["regularMarketPrice"])
	}
	if flat.Str("longName") != "Reliance Industries Limited" {
		t.Errorf("longName = %v", flat["longName"])
	}
	if flat.Num("marketCap") != 1.66e13 {
		t.Errorf("marketCap = %v, price module must take precedence", flat["marketCap"])
	}
	if flat.Num("previousClose") != 2440.0 {
		t.Errorf("previousClose = %v", flat["previousClose"])
	}
	if flat.Str("sector") != "Energy" {
		t.Errorf("sector = %v", flat["sector"])
	}
	if flat.Num("beta") != 1.1 {
		t.Errorf("beta = %v", flat["beta"])
	}
}

func TestFlattenQuoteSummary_Empty(t *testing.T) {
	flat := flattenQuoteSummary(map[string]map[string]interface{}{})
	if !flat.IsEmpty() {
		t.Errorf("expected empty fundamentals, got %v", flat)
	}
}

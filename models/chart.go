package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is one candlestick in a chart specification
type Candle struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
}

// OverlayPoint is one point of an overlay line
type OverlayPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Overlay is a named line drawn over the candles, e.g. a moving average
type Overlay struct {
	Name   string         `json:"name"`
	Points []OverlayPoint `json:"points"`
}

// VolumeBar is one volume bar; Up selects the two-color encoding
// (close >= open for that bar)
type VolumeBar struct {
	Timestamp time.Time `json:"timestamp"`
	Volume    int64     `json:"volume"`
	Up        bool      `json:"up"`
}

// ChartSpec is the layered chart specification consumed by the dashboard:
// one candlestick series, zero or more overlay lines, one volume series
type ChartSpec struct {
	Symbol   string      `json:"symbol"`
	Candles  []Candle    `json:"candles"`
	Overlays []Overlay   `json:"overlays,omitempty"`
	Volume   []VolumeBar `json:"volume"`
}

// Empty reports whether the spec carries no bars. The dashboard renders
// this as a "data still loading" state, not an error.
func (c ChartSpec) Empty() bool {
	return len(c.Candles) == 0
}

package analyzer

import (
	"math"

	"stock-insight/models"
)

// DeriveIndicators computes the per-query indicator set from a price
// series, falling back to fundamentals fields when the series is empty.
// Every indicator degrades to a defined value on short series: moving
// averages collapse to the current price and the volume average to the
// last volume, so a one-bar series still yields a complete set.
func DeriveIndicators(bars []models.Bar, fundamentals models.Fundamentals) models.IndicatorSet {
	if len(bars) == 0 {
		return indicatorsFromFundamentals(fundamentals)
	}

	closes := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i], _ = bar.Close.Float64()
		volumes[i] = float64(bar.Volume)
	}

	currentPrice := closes[len(closes)-1]
	previousClose := currentPrice
	if len(closes) > 1 {
		previousClose = closes[len(closes)-2]
	}

	change := currentPrice - previousClose
	changePct := 0.0
	if previousClose > 0 {
		changePct = change / previousClose * 100
	}

	sma20 := currentPrice
	if len(closes) >= 20 {
		sma20 = trailingMean(closes, 20)
	}
	sma50 := currentPrice
	if len(closes) >= 50 {
		sma50 = trailingMean(closes, 50)
	}

	volume := volumes[len(volumes)-1]
	avgVolume := volume
	if len(volumes) >= 20 {
		avgVolume = trailingMean(volumes, 20)
	}

	return models.IndicatorSet{
		CurrentPrice:  currentPrice,
		PreviousClose: previousClose,
		Change:        change,
		ChangePercent: changePct,
		SMA20:         sma20,
		SMA50:         sma50,
		Volume:        volume,
		AvgVolume20:   avgVolume,
		Volatility:    closeVolatility(closes),
	}
}

// indicatorsFromFundamentals builds the indicator set from snapshot
// fields alone when no price series is available
func indicatorsFromFundamentals(f models.Fundamentals) models.IndicatorSet {
	currentPrice := f.NumOr("currentPrice", f.Num("regularMarketPrice"))
	previousClose := f.NumOr("previousClose", currentPrice)

	change := currentPrice - previousClose
	changePct := 0.0
	if previousClose > 0 {
		changePct = change / previousClose * 100
	}

	volume := f.Num("volume")

	return models.IndicatorSet{
		CurrentPrice:  currentPrice,
		PreviousClose: previousClose,
		Change:        change,
		ChangePercent: changePct,
		SMA20:         currentPrice,
		SMA50:         currentPrice,
		Volume:        volume,
		AvgVolume20:   f.NumOr("averageVolume", volume),
	}
}

// trailingMean averages the last window values of the series.
// The caller guarantees len(values) >= window.
func trailingMean(values []float64, window int) float64 {
	sum := 0.0
	for _, v := range values[len(values)-window:] {
		sum += v
	}
	return sum / float64(window)
}

// closeVolatility is the sample standard deviation of bar-to-bar close
// percentage changes, expressed in percent. Series shorter than three
// bars have no meaningful spread and yield zero.
func closeVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0
	}

	changes := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		changes = append(changes, (closes[i]-closes[i-1])/closes[i-1])
	}
	if len(changes) < 2 {
		return 0
	}

	mean := 0.0
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))

	variance := 0.0
	for _, c := range changes {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(changes) - 1)

	return math.Sqrt(variance) * 100
}

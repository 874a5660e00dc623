package analyzer

import (
	"stock-insight/models"
)

// BuildChart derives a layered chart specification from a price series:
// candles, SMA overlays where the series is long enough, and a two-color
// volume series. An empty series yields an empty spec, which the
// dashboard treats as "data still loading".
func BuildChart(bars []models.Bar, symbol string) models.ChartSpec {
	spec := models.ChartSpec{Symbol: symbol}
	if len(bars) == 0 {
		return spec
	}

	closes := make([]float64, len(bars))
	spec.Candles = make([]models.Candle, len(bars))
	spec.Volume = make([]models.VolumeBar, len(bars))
	for i, bar := range bars {
		closes[i], _ = bar.Close.Float64()
		spec.Candles[i] = models.Candle{
			Timestamp: bar.Timestamp,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Close:     bar.Close,
		}
		spec.Volume[i] = models.VolumeBar{
			Timestamp: bar.Timestamp,
			Volume:    bar.Volume,
			Up:        bar.Close.GreaterThanOrEqual(bar.Open),
		}
	}

	if len(bars) >= 20 {
		spec.Overlays = append(spec.Overlays, smaOverlay("SMA 20", bars, closes, 20))
	}
	if len(bars) >= 50 {
		spec.Overlays = append(spec.Overlays, smaOverlay("SMA 50", bars, closes, 50))
	}

	return spec
}

// smaOverlay computes a trailing rolling mean over closes. The first
// point sits at index window-1; earlier bars have no defined value.
func smaOverlay(name string, bars []models.Bar, closes []float64, window int) models.Overlay {
	overlay := models.Overlay{
		Name:   name,
		Points: make([]models.OverlayPoint, 0, len(bars)-window+1),
	}

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			overlay.Points = append(overlay.Points, models.OverlayPoint{
				Timestamp: bars[i].Timestamp,
				Value:     sum / float64(window),
			})
		}
	}

	return overlay
}

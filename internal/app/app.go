package app

import (
	"context"
	"fmt"
	"time"

	"stock-insight/config"
	"stock-insight/models"
	"stock-insight/observability"
)

// AnalyzerInterface defines the pipeline operations needed by App
type AnalyzerInterface interface {
	Analyze(ctx context.Context, query string) (*models.StockReport, error)
	TopPicks(ctx context.Context) string
}

// ResolverInterface defines symbol resolution for the lookup endpoint
type ResolverInterface interface {
	Resolve(ctx context.Context, raw string) (string, bool)
}

// App struct holds application dependencies using interfaces for testability
type App struct {
	cfg         *config.Config
	analyzer    AnalyzerInterface
	resolver    ResolverInterface
	analysisSem chan struct{}
}

// New creates a new App application struct
func New(cfg *config.Config, analyzer AnalyzerInterface, resolver ResolverInterface) *App {
	return &App{
		cfg:         cfg,
		analyzer:    analyzer,
		resolver:    resolver,
		analysisSem: make(chan struct{}, cfg.Pipeline.ConcurrencyLimit),
	}
}

// AnalyzeStock runs the full analysis pipeline for a symbol-analysis
// request. The mode travels with the request rather than living in
// shared state. Concurrency is bounded by a semaphore; when the queue
// is full the request is rejected immediately rather than piling up
// behind slow provider calls.
func (a *App) AnalyzeStock(ctx context.Context, req models.Request) (*models.StockReport, error) {
	if a.analyzer == nil {
		return nil, fmt.Errorf("analyzer not initialized")
	}
	if req.Mode != models.ModeSymbolAnalysis {
		return nil, fmt.Errorf("unsupported request mode %q", req.Mode)
	}

	select {
	case a.analysisSem <- struct{}{}:
		defer func() { <-a.analysisSem }()
	default:
		return nil, fmt.Errorf("analysis queue full, too many concurrent requests - try again later")
	}

	metrics := observability.GetMetrics()
	metrics.RecordAnalysisRequest(string(req.Mode))
	timer := metrics.NewTimer()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Pipeline.TimeoutSeconds)*time.Second)
	defer cancel()

	report, err := a.analyzer.Analyze(ctx, req.Query)
	if err != nil {
		timer.ObserveAnalysis(string(req.Mode), "error")
		return nil, err
	}

	timer.ObserveAnalysis(string(req.Mode), "success")
	return report, nil
}

// TopPicks returns the daily recommendation text
func (a *App) TopPicks(ctx context.Context) (string, error) {
	if a.analyzer == nil {
		return "", fmt.Errorf("analyzer not initialized")
	}

	select {
	case a.analysisSem <- struct{}{}:
		defer func() { <-a.analysisSem }()
	default:
		return "", fmt.Errorf("analysis queue full, too many concurrent requests - try again later")
	}

	req := models.Request{Mode: models.ModeTopPicks}

	metrics := observability.GetMetrics()
	metrics.RecordAnalysisRequest(string(req.Mode))
	timer := metrics.NewTimer()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Pipeline.TimeoutSeconds)*time.Second)
	defer cancel()

	text := a.analyzer.TopPicks(ctx)

	timer.ObserveAnalysis(string(req.Mode), "success")
	return text, nil
}

// Resolve maps a free-text query to a ticker symbol without running
// the full pipeline
func (a *App) Resolve(ctx context.Context, query string) (string, bool) {
	if a.resolver == nil {
		return "", false
	}
	return a.resolver.Resolve(ctx, query)
}

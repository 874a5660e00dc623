package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stock-insight/analyzer"
	"stock-insight/config"
	"stock-insight/internal/api"
	"stock-insight/internal/app"
	"stock-insight/observability"
	"stock-insight/resolver"
	"stock-insight/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		observability.InitLogger(true)
		observability.Info("no .env file found, using environment variables")
	}

	production := os.Getenv("ENV") == "production"
	observability.InitLogger(production)
	observability.InitMetrics()

	cfg, err := config.Load()
	if err != nil {
		observability.Fatal("failed to load configuration", "error", err)
	}

	// Initialize services (with nil checks for graceful degradation)
	var serperService *services.SerperService
	if cfg.HasSerper() {
		serperService = services.NewSerperService(cfg)
	} else {
		observability.Warn("SERPER_API_KEY not set, web intelligence and symbol search disabled")
	}

	var groqService *services.GroqService
	if cfg.HasGroq() {
		groqService, err = services.NewGroqService(cfg)
		if err != nil {
			observability.Fatal("failed to initialize Groq service", "error", err)
		}
	} else {
		observability.Warn("GROQ_API_KEY not set, AI analysis disabled")
	}

	marketService := services.NewMarketDataService(cfg)

	// Wire the pipeline. Interface-typed nils must stay nil, so the
	// optional services are passed through typed variables.
	var searchDep services.SerperServiceInterface
	if serperService != nil {
		searchDep = serperService
	}
	var llmDep services.GroqServiceInterface
	if groqService != nil {
		llmDep = groqService
	}

	symbolResolver := resolver.NewResolver(searchDep)
	intelGatherer := analyzer.NewIntelGatherer(searchDep)
	insightGenerator := analyzer.NewInsightGenerator(llmDep, cfg)
	pipeline := analyzer.NewAnalyzer(symbolResolver, marketService, intelGatherer, insightGenerator)

	application := app.New(cfg, pipeline, symbolResolver)

	handler := api.NewHandler(application, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.Pipeline.TimeoutSeconds+10) * time.Second,
	}

	go func() {
		observability.Info("starting server", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			observability.Fatal("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	observability.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		observability.Fatal("server forced to shutdown", "error", err)
	}

	observability.Info("server stopped")
}

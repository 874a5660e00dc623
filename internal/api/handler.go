package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stock-insight/analyzer"
	"stock-insight/config"
	"stock-insight/internal/app"
	"stock-insight/models"
	"stock-insight/services"
)

// Handler handles HTTP API requests
type Handler struct {
	app *app.App
	cfg *config.Config
}

// NewHandler creates a new Handler
func NewHandler(application *app.App, cfg *config.Config) *Handler {
	return &Handler{app: application, cfg: cfg}
}

// AnalyzeRequest is a stock analysis request
type AnalyzeRequest struct {
	Query string `json:"query"`
}

// HandleIndex returns service information
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, map[string]interface{}{
		"service": "stock-insight",
		"description": "Indian stock analysis: free-text lookup, price history, " +
			"web intelligence and AI-generated insight",
		"endpoints": []string{
			"POST /api/analyze",
			"POST /api/picks",
			"GET /api/resolve",
			"GET /api/health",
			"GET /metrics",
		},
	})
}

// HandleHealth returns the health status of the application
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"providers": map[string]bool{
			"groq":   h.cfg.HasGroq(),
			"serper": h.cfg.HasSerper(),
		},
	}

	cbStatus := services.GetGlobalRegistry().Status()
	status["circuit_breakers"] = cbStatus

	for _, cb := range cbStatus {
		if cb.State == "open" {
			status["status"] = "degraded"
			break
		}
	}

	h.jsonResponse(w, status)
}

// HandleAnalyze runs the full analysis pipeline for a free-text query.
// An unresolvable query maps to 404, a resolved symbol with no provider
// data maps to 502; every softer failure is reflected inside the report
// body rather than the status code.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		h.jsonError(w, "query is required", http.StatusBadRequest)
		return
	}

	report, err := h.app.AnalyzeStock(r.Context(), models.Request{
		Mode:  models.ModeSymbolAnalysis,
		Query: req.Query,
	})
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrSymbolNotFound):
			h.jsonError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, analyzer.ErrNoData):
			h.jsonError(w, err.Error(), http.StatusBadGateway)
		default:
			h.jsonError(w, err.Error(), http.StatusServiceUnavailable)
		}
		return
	}

	h.jsonResponse(w, report)
}

// HandlePicks returns the daily top-picks recommendation text
func (h *Handler) HandlePicks(w http.ResponseWriter, r *http.Request) {
	text, err := h.app.TopPicks(r.Context())
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	h.jsonResponse(w, map[string]string{"recommendations": text})
}

// HandleResolve maps a free-text query to a ticker symbol
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.jsonError(w, "query parameter q is required", http.StatusBadRequest)
		return
	}

	symbol, ok := h.app.Resolve(r.Context(), query)
	if !ok {
		h.jsonError(w, "stock symbol not found", http.StatusNotFound)
		return
	}

	h.jsonResponse(w, map[string]string{"query": query, "symbol": symbol})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package analyzer

import (
	"context"
	"fmt"

	appconfig "stock-insight/config"
	"stock-insight/services"
)

// popularSymbols are the candidate stocks considered for the daily
// top-picks recommendation
var popularSymbols = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"BHARTIARTL.NS", "SBIN.NS", "BAJFINANCE.NS", "LT.NS", "ITC.NS",
}

// InsightGenerator produces analysis text via the LLM. Model failures
// never propagate as errors: the failure is rendered as explanatory
// text in place of the analysis, keeping the rest of the report intact.
type InsightGenerator struct {
	llm               services.GroqServiceInterface
	analysisMaxTokens int
	picksMaxTokens    int
}

// NewInsightGenerator creates a new InsightGenerator instance
func NewInsightGenerator(llm services.GroqServiceInterface, cfg *appconfig.Config) *InsightGenerator {
	return &InsightGenerator{
		llm:               llm,
		analysisMaxTokens: cfg.Groq.AnalysisMaxTokens,
		picksMaxTokens:    cfg.Groq.PicksMaxTokens,
	}
}

// Generate runs a single-stock analysis prompt through the model
func (g *InsightGenerator) Generate(ctx context.Context, prompt string) string {
	if g.llm == nil {
		return "Error generating AI analysis: GROQ_API_KEY not configured"
	}
	text, err := g.llm.InvokeWithPrompt(ctx, analysisSystemPrompt, prompt, g.analysisMaxTokens)
	if err != nil {
		return fmt.Sprintf("Error generating AI analysis: %v", err)
	}
	return text
}

// TopPicks asks the model for its best picks across the popular symbols
func (g *InsightGenerator) TopPicks(ctx context.Context) string {
	if g.llm == nil {
		return "Error generating recommendations: GROQ_API_KEY not configured"
	}
	prompt := BuildTopPicksPrompt(popularSymbols)
	text, err := g.llm.InvokeWithPrompt(ctx, topPicksSystemPrompt, prompt, g.picksMaxTokens)
	if err != nil {
		return fmt.Sprintf("Error generating recommendations: %v", err)
	}
	return text
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestMode selects what the dashboard asked for. The mode travels
// with the request through the pipeline instead of living in shared
// session state, so two concurrent requests can never observe each
// other's view.
type RequestMode string

const (
	ModeIdle           RequestMode = "idle"
	ModeSymbolAnalysis RequestMode = "symbol_analysis"
	ModeTopPicks       RequestMode = "top_picks"
)

// Request is one user query, request-scoped
type Request struct {
	Mode  RequestMode `json:"mode"`
	Query string      `json:"query,omitempty"`
}

// CompanyProfile holds the descriptive display fields of a company,
// each defaulted to "N/A" semantics at render time when absent
type CompanyProfile struct {
	LongName  string `json:"long_name,omitempty"`
	Sector    string `json:"sector,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Website   string `json:"website,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Employees int64  `json:"employees,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// StockReport is the full per-query aggregate returned to the dashboard.
// Everything in it is created fresh for the query and discarded after
// the response is produced; nothing is persisted.
type StockReport struct {
	ID           uuid.UUID       `json:"id"`
	Symbol       string          `json:"symbol"`
	CompanyName  string          `json:"company_name"`
	Profile      CompanyProfile  `json:"profile"`
	Fundamentals Fundamentals    `json:"fundamentals"`
	Indicators   IndicatorSet    `json:"indicators"`
	Chart        ChartSpec       `json:"chart"`
	Intel        WebIntelligence `json:"intel"`
	Analysis     string          `json:"analysis"`
	CreatedAt    time.Time       `json:"created_at"`
}

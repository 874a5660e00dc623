package models

// NewsItem is a single news article returned by the web-search provider
type NewsItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Link    string `json:"link"`
	Date    string `json:"date,omitempty"`
}

// SearchResult is a single organic search result
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Web-intelligence aggregation bounds. Items beyond these caps are
// discarded in call-concatenation order, most relevant first as
// returned by the provider; no re-ranking is performed here.
const (
	MaxNewsItems     = 30
	MaxSearchResults = 20
)

// WebIntelligence is the bounded news/search aggregate for one query
type WebIntelligence struct {
	News          []NewsItem     `json:"news"`
	SearchResults []SearchResult `json:"search_results"`
	CompanyName   string         `json:"company_name"`
}

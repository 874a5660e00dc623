package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	appconfig "stock-insight/config"
	"stock-insight/models"
	"stock-insight/observability"
)

// SerperService handles communication with the Serper web-search API.
// Serper exposes two endpoints: general search (organic results plus
// inline news) and a dedicated news search.
type SerperService struct {
	client *resty.Client
}

// NewSerperService creates a new SerperService instance
func NewSerperService(cfg *appconfig.Config) *SerperService {
	client := resty.New().
		SetBaseURL(cfg.Serper.BaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("X-API-KEY", cfg.Serper.APIKey).
		SetHeader("Content-Type", "application/json")

	return &SerperService{client: client}
}

// SearchBundle is the combined payload of one general-search call
type SearchBundle struct {
	Organic []models.SearchResult
	News    []models.NewsItem
}

// serperSearchResponse mirrors the Serper /search response shape
type serperSearchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
	News []serperNewsItem `json:"news"`
}

// serperNewsResponse mirrors the Serper /news response shape
type serperNewsResponse struct {
	News []serperNewsItem `json:"news"`
}

type serperNewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

// Search issues one general-search query and returns organic results
// plus any inline news the provider attached to them
func (s *SerperService) Search(ctx context.Context, query string, num int) (*SearchBundle, error) {
	metrics := observability.GetMetrics()
	metrics.RecordExternalAPIRequest(BreakerSerper, "search")
	timer := metrics.NewTimer()

	result, err := WithCircuitBreaker(ctx, BreakerSerper, func() (*SearchBundle, error) {
		var parsed serperSearchResponse
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(map[string]interface{}{"q": query, "num": num}).
			SetResult(&parsed).
			Post("/search")
		if err != nil {
			return nil, fmt.Errorf("failed to query serper search: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("serper search returned status %d", resp.StatusCode())
		}

		bundle := &SearchBundle{
			Organic: make([]models.SearchResult, 0, len(parsed.Organic)),
			News:    convertNewsItems(parsed.News),
		}
		for _, item := range parsed.Organic {
			bundle.Organic = append(bundle.Organic, models.SearchResult{
				Title:   item.Title,
				Snippet: item.Snippet,
				Link:    item.Link,
			})
		}
		return bundle, nil
	})

	timer.ObserveExternalAPI(BreakerSerper, "search")
	if err != nil {
		metrics.RecordExternalAPIError(BreakerSerper, "search", categorizeAPIError(err))
	}
	return result, err
}

// News issues one dedicated news-search query
func (s *SerperService) News(ctx context.Context, query string, num int) ([]models.NewsItem, error) {
	metrics := observability.GetMetrics()
	metrics.RecordExternalAPIRequest(BreakerSerper, "news")
	timer := metrics.NewTimer()

	result, err := WithCircuitBreaker(ctx, BreakerSerper, func() ([]models.NewsItem, error) {
		var parsed serperNewsResponse
		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(map[string]interface{}{"q": query, "num": num}).
			SetResult(&parsed).
			Post("/news")
		if err != nil {
			return nil, fmt.Errorf("failed to query serper news: %w", err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("serper news returned status %d", resp.StatusCode())
		}
		return convertNewsItems(parsed.News), nil
	})

	timer.ObserveExternalAPI(BreakerSerper, "news")
	if err != nil {
		metrics.RecordExternalAPIError(BreakerSerper, "news", categorizeAPIError(err))
	}
	return result, err
}

func convertNewsItems(items []serperNewsItem) []models.NewsItem {
	converted := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, models.NewsItem{
			Title:   item.Title,
			Snippet: item.Snippet,
			Source:  item.Source,
			Link:    item.Link,
			Date:    item.Date,
		})
	}
	return converted
}

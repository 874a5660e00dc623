package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"stock-insight/models"
)

const (
	// analysisSystemPrompt is the fixed role instruction for single-stock analysis
	analysisSystemPrompt = "You are an expert Indian stock market analyst with deep knowledge of NSE, BSE, technical analysis, fundamental analysis, and Indian market trends. Provide detailed, actionable insights."

	// topPicksSystemPrompt is the fixed role instruction for daily recommendations
	topPicksSystemPrompt = "You are an expert Indian stock market analyst. Provide actionable stock recommendations based on NSE/BSE market analysis."
)

// snippetLimit caps how much of each news or search snippet makes it
// into the prompt
const snippetLimit = 100

const (
	promptNewsLimit   = 10
	promptSearchLimit = 5
)

// BuildAnalysisPrompt renders the single-stock analysis prompt. It is a
// pure function: identical inputs always produce identical text.
// Missing fundamental fields render as "N/A" rather than being omitted,
// so the model always sees the full field list.
func BuildAnalysisPrompt(symbol string, indicators models.IndicatorSet, fundamentals models.Fundamentals, intel models.WebIntelligence) string {
	companyName := intel.CompanyName
	if companyName == "" {
		companyName = symbol
	}

	high52 := fundamentals.NumOr("fiftyTwoWeekHigh", indicators.CurrentPrice)
	low52 := fundamentals.NumOr("fiftyTwoWeekLow", indicators.CurrentPrice)

	dividendYield := fundamentals.Num("dividendYield") * 100

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the Indian stock %s (%s) with the following comprehensive information:\n\n", symbol, companyName)

	b.WriteString("PRICE DATA:\n")
	fmt.Fprintf(&b, "Current Price: ₹%.2f\n", indicators.CurrentPrice)
	fmt.Fprintf(&b, "Previous Close: ₹%.2f\n", indicators.PreviousClose)
	fmt.Fprintf(&b, "Change: ₹%.2f (%+.2f%%)\n", indicators.Change, indicators.ChangePercent)
	fmt.Fprintf(&b, "52 Week High: ₹%.2f\n", high52)
	fmt.Fprintf(&b, "52 Week Low: ₹%.2f\n", low52)
	fmt.Fprintf(&b, "SMA 20: ₹%.2f\n", indicators.SMA20)
	fmt.Fprintf(&b, "SMA 50: ₹%.2f\n", indicators.SMA50)
	fmt.Fprintf(&b, "Volume: %s\n", groupDigits(indicators.Volume))
	fmt.Fprintf(&b, "Average Volume (20d): %s\n", groupDigits(indicators.AvgVolume20))
	fmt.Fprintf(&b, "Volatility: %.2f%%\n\n", indicators.Volatility)

	b.WriteString("COMPANY INFORMATION:\n")
	fmt.Fprintf(&b, "- Sector: %s\n", fundamentals.StrOr("sector", "N/A"))
	fmt.Fprintf(&b, "- Industry: %s\n", fundamentals.StrOr("industry", "N/A"))
	fmt.Fprintf(&b, "- Market Cap: ₹%.2f Cr\n", fundamentals.Num("marketCap")/1e7)
	fmt.Fprintf(&b, "- P/E Ratio: %s\n", numOrNA(fundamentals, "trailingPE"))
	fmt.Fprintf(&b, "- Book Value: %s\n", currencyOrNA(fundamentals, "bookValue"))
	fmt.Fprintf(&b, "- Dividend Yield: %.2f%%\n", dividendYield)
	fmt.Fprintf(&b, "- Beta: %s\n\n", numOrNA(fundamentals, "beta"))

	b.WriteString("RECENT NEWS & INFORMATION:\n")
	b.WriteString(newsSection(intel.News))
	b.WriteString("\n\n")

	b.WriteString("MARKET INTELLIGENCE:\n")
	b.WriteString(searchSection(intel.SearchResults))
	b.WriteString("\n\n")

	b.WriteString(`Provide a comprehensive analysis including:
1. **Executive Summary** - Brief overview of the stock
2. **Technical Analysis** - Price action, support/resistance, indicators
3. **Fundamental Analysis** - Financial health, valuation metrics
4. **Market Sentiment** - Based on news and market data
5. **Trading Recommendation** - Buy/Hold/Sell with reasoning
6. **Price Targets** - Short-term and medium-term targets
7. **Risk Assessment** - Key risks and concerns
8. **Investment Strategy** - Best approach for this stock

Format the analysis clearly with sections and actionable insights. Focus on Indian market context.`)

	return b.String()
}

// BuildTopPicksPrompt renders the daily-recommendation prompt over the
// supplied candidate symbols
func BuildTopPicksPrompt(symbols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on current Indian market conditions (NSE/BSE), analyze these popular stocks: %s\n\n", strings.Join(symbols, ", "))
	b.WriteString(`Provide your top 5 best Indian stock picks for today with:
1. Stock symbol and company name
2. Current price range
3. Brief reason (2-3 sentences)
4. Expected price movement direction (Up/Down/Sideways)
5. Risk level (Low/Medium/High)
6. Entry strategy

Format as a numbered list with clear sections.`)
	return b.String()
}

func newsSection(items []models.NewsItem) string {
	if len(items) == 0 {
		return "No recent news available"
	}
	lines := make([]string, 0, promptNewsLimit)
	for i, item := range items {
		if i >= promptNewsLimit {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, truncate(item.Snippet, snippetLimit)))
	}
	return strings.Join(lines, "\n")
}

func searchSection(items []models.SearchResult) string {
	if len(items) == 0 {
		return "No additional information available"
	}
	lines := make([]string, 0, promptSearchLimit)
	for i, item := range items {
		if i >= promptSearchLimit {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, truncate(item.Snippet, snippetLimit)))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts a string to at most limit runes
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// numOrNA formats a numeric fundamentals field with two decimals, or
// "N/A" when the field is absent
func numOrNA(f models.Fundamentals, key string) string {
	if !f.Has(key) {
		return "N/A"
	}
	return strconv.FormatFloat(f.Num(key), 'f', 2, 64)
}

// currencyOrNA is numOrNA with a rupee prefix
func currencyOrNA(f models.Fundamentals, key string) string {
	if !f.Has(key) {
		return "N/A"
	}
	return fmt.Sprintf("₹%.2f", f.Num(key))
}

// groupDigits formats a non-negative value as a comma-grouped integer
func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

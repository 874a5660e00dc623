package analyzer

import "errors"

var (
	// ErrSymbolNotFound means no resolution step could map the query
	// to a ticker symbol
	ErrSymbolNotFound = errors.New("stock symbol not found")

	// ErrNoData means the symbol resolved but the market-data provider
	// returned neither price history nor fundamentals
	ErrNoData = errors.New("no market data available for symbol")
)

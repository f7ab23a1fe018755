package models

import "time"

// StockSnapshot is the point-in-time valuation picture for a ticker,
// fetched fresh per request.
type StockSnapshot struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    int64   `json:"market_cap"`
	ForwardPE    float64 `json:"forward_pe"`
	ForwardEPS   float64 `json:"forward_eps"`
}

// Candle is one daily OHLC bar.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SnapshotInput is the argument schema for the stock_snapshot agent tool.
type SnapshotInput struct {
	Ticker string `json:"ticker"`
}

// SnapshotOutput is what the stock_snapshot tool hands back to the agent.
type SnapshotOutput struct {
	Summary string `json:"summary"`
}

// SearchInput is the argument schema for the web_search agent tool.
type SearchInput struct {
	Query string `json:"query"`
}

// SearchOutput is what the web_search tool hands back to the agent.
type SearchOutput struct {
	Results string `json:"results"`
}

package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	t_utils "github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/dustin/go-humanize"

	"strategist/internal/models"
)

// Snapshotter is the market-data capability the snapshot tool wraps. Any
// client exposing current metrics by ticker can be registered.
type Snapshotter interface {
	GetSnapshot(symbol string) (*models.StockSnapshot, error)
}

// Searcher is the web-search capability the search tool wraps.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (string, error)
}

// NewSnapshotTool builds the stock_snapshot agent tool. It hands the agent
// a one-line text summary of the ticker's current financial metrics.
func NewSnapshotTool(md Snapshotter) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "stock_snapshot",
			Desc: "Get the latest financial metrics for a stock: current price, market cap, forward P/E and forward EPS",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"ticker": {
					Type:     "string",
					Desc:     "The stock ticker symbol, e.g. NVDA",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input models.SnapshotInput) (*models.SnapshotOutput, error) {
			if input.Ticker == "" {
				return nil, fmt.Errorf("ticker parameter is required")
			}

			snap, err := md.GetSnapshot(input.Ticker)
			if err != nil {
				return nil, err
			}

			return &models.SnapshotOutput{Summary: FormatSnapshot(snap)}, nil
		},
	)
}

// NewWebSearchTool builds the web_search agent tool. The prompt instructs
// the agent to call it at most two or three times; maxResults bounds the
// payload of each call.
func NewWebSearchTool(ws Searcher, maxResults int) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "web_search",
			Desc: "Search the web for recent news and analyst commentary about a stock",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "The search query",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input models.SearchInput) (*models.SearchOutput, error) {
			if input.Query == "" {
				return nil, fmt.Errorf("query parameter is required")
			}

			results, err := ws.Search(ctx, input.Query, maxResults)
			if err != nil {
				return nil, err
			}

			return &models.SearchOutput{Results: results}, nil
		},
	)
}

// FormatSnapshot renders a snapshot as the text line the agent consumes.
func FormatSnapshot(snap *models.StockSnapshot) string {
	return fmt.Sprintf("Current price: $%.2f, Market cap: %s, Forward P/E: %.2f, Forward EPS: %.2f",
		snap.CurrentPrice, humanize.Comma(snap.MarketCap), snap.ForwardPE, snap.ForwardEPS)
}

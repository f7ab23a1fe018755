package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strategist/internal/models"
)

type stubSnapshotter struct {
	snap *models.StockSnapshot
	err  error
}

func (s *stubSnapshotter) GetSnapshot(symbol string) (*models.StockSnapshot, error) {
	return s.snap, s.err
}

type stubSearcher struct {
	results string
	gotMax  int
}

func (s *stubSearcher) Search(ctx context.Context, query string, maxResults int) (string, error) {
	s.gotMax = maxResults
	return s.results, nil
}

func TestSnapshotToolInfo(t *testing.T) {
	tl := NewSnapshotTool(&stubSnapshotter{})

	info, err := tl.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stock_snapshot", info.Name)
}

func TestWebSearchToolInfo(t *testing.T) {
	tl := NewWebSearchTool(&stubSearcher{}, 5)

	info, err := tl.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "web_search", info.Name)
}

func TestFormatSnapshot(t *testing.T) {
	line := FormatSnapshot(&models.StockSnapshot{
		Symbol:       "NVDA",
		CurrentPrice: 181.5,
		MarketCap:    4430000000000,
		ForwardPE:    32.4,
		ForwardEPS:   5.6,
	})

	assert.Contains(t, line, "$181.50")
	assert.Contains(t, line, "4,430,000,000,000")
	assert.Contains(t, line, "Forward P/E: 32.40")
	assert.Contains(t, line, "Forward EPS: 5.60")
}

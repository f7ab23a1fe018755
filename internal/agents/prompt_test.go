package agents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"strategist/internal/models"
)

func TestSystemPromptAnchorsDateAndPrice(t *testing.T) {
	snap := &models.StockSnapshot{Symbol: "NVDA", CurrentPrice: 181.5}

	p := systemPrompt("NVDA", snap)
	assert.Contains(t, p, "$181.50")
	assert.Contains(t, p, time.Now().Format("2006-01-02"))
	assert.Contains(t, p, "NVDA")
}

func TestTaskPromptCarriesConstraints(t *testing.T) {
	snap := &models.StockSnapshot{Symbol: "AAPL", CurrentPrice: 200, MarketCap: 3_000_000_000_000, ForwardPE: 28, ForwardEPS: 7.1}

	p := taskPrompt("AAPL", models.RiskLowest, snap, "Korean")
	assert.Contains(t, p, "Korean")
	assert.Contains(t, p, "Lowest risk")
	assert.Contains(t, p, "5% below")
	assert.Contains(t, p, "Target Price: $<number>")
	assert.Contains(t, p, "Stop Loss: $<number>")
	assert.Contains(t, p, "at most 2-3 times")
}

func TestTaskPromptRiskBands(t *testing.T) {
	snap := &models.StockSnapshot{Symbol: "AAPL", CurrentPrice: 200}

	assert.Contains(t, taskPrompt("AAPL", models.RiskMid, snap, "English"), "10% below")
	assert.Contains(t, taskPrompt("AAPL", models.RiskHigh, snap, "English"), "20% below")
}

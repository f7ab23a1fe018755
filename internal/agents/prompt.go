package agents

import (
	"fmt"
	"time"

	"strategist/internal/models"
	"strategist/internal/tools"
)

func systemPrompt(ticker string, snap *models.StockSnapshot) string {
	return fmt.Sprintf(`You are a senior Wall Street equity analyst who treats the market's current price as the single most important anchor.
Build realistic, achievable targets from the current price of $%.2f, never from memory of old price levels.

You have access to the following tools:
- stock_snapshot: latest financial metrics for a ticker (price, market cap, forward P/E, forward EPS).
- web_search: recent news and analyst commentary.

For your reference, the current date is %s. The company under analysis is %s.`,
		snap.CurrentPrice, time.Now().Format("2006-01-02"), ticker)
}

func taskPrompt(ticker string, risk models.RiskPreference, snap *models.StockSnapshot, language string) string {
	band := risk.StopLossBand()

	return fmt.Sprintf(`Analyze %s as of today (%s) and write an investment report in %s.

Investor risk preference: %s.
Latest snapshot: %s

[Hard constraints on prices]
- Check the current price ($%.2f) and set both the target price and the stop-loss relative to it.
- The target price must stay within a sensible upside of the current price (typically 10-30%%).
- The stop-loss must stay within %.0f%% below the current price for this risk preference.
- Numbers wildly detached from the current price are forbidden.

[API budget]
1. Use web_search at most 2-3 times, only for the latest news.
2. Use stock_snapshot for all numeric data instead of searching.
3. Do not repeat searches.

[Report structure]
1. Earnings review: summary of the latest financial metrics
2. SWOT analysis
3. Trading strategy: end with exactly these two lines, with reasoning above them:
Target Price: $<number>
Stop Loss: $<number>`,
		ticker, time.Now().Format("2006-01-02"), language, risk,
		tools.FormatSnapshot(snap), snap.CurrentPrice, band*100)
}

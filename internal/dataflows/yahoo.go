package dataflows

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"

	"strategist/internal/models"
)

// ErrDataUnavailable marks a market-data fetch that failed at the provider.
// An empty history is not this error; it is a valid "nothing to chart" result.
var ErrDataUnavailable = errors.New("market data unavailable")

// YahooClient fetches snapshot metrics and daily OHLC history from Yahoo
// Finance.
type YahooClient struct{}

// NewYahooClient creates a new Yahoo Finance client.
func NewYahooClient() *YahooClient {
	return &YahooClient{}
}

// GetSnapshot returns the current valuation picture for a ticker. Fields the
// provider omits (unknown tickers, funds without earnings) come back zero.
func (yc *YahooClient) GetSnapshot(symbol string) (*models.StockSnapshot, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot for %s: %v", ErrDataUnavailable, symbol, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("%w: no snapshot for %s", ErrDataUnavailable, symbol)
	}

	return &models.StockSnapshot{
		Symbol:       symbol,
		CurrentPrice: eq.RegularMarketPrice,
		MarketCap:    eq.MarketCap,
		ForwardPE:    eq.ForwardPE,
		ForwardEPS:   eq.EpsForward,
	}, nil
}

// GetDailyHistory returns daily candles for the trailing lookbackDays,
// ordered by date ascending. An empty slice with a nil error means the
// provider had nothing for the range.
func (yc *YahooClient) GetDailyHistory(symbol string, lookbackDays int) ([]models.Candle, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	candles := make([]models.Candle, 0, lookbackDays)
	for iter.Next() {
		bar := iter.Bar()

		open, _ := bar.Open.Float64()
		high, _ := bar.High.Float64()
		low, _ := bar.Low.Float64()
		closep, _ := bar.Close.Float64()

		candles = append(candles, models.Candle{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closep,
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: history for %s: %v", ErrDataUnavailable, symbol, err)
	}

	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Date.Before(candles[j].Date)
	})

	return candles, nil
}

// Package service orchestrates one analysis run end to end.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"strategist/internal/cache"
	"strategist/internal/dataflows"
	"strategist/internal/extract"
	"strategist/internal/models"
)

// ReportGenerator produces the free-text report for one request.
type ReportGenerator interface {
	Generate(ctx context.Context, ticker string, risk models.RiskPreference, snap *models.StockSnapshot) (string, error)
}

// MarketData is the provider surface the pipeline needs.
type MarketData interface {
	GetSnapshot(symbol string) (*models.StockSnapshot, error)
	GetDailyHistory(symbol string, lookbackDays int) ([]models.Candle, error)
}

// Analysis runs the pipeline: snapshot, agent report, price extraction.
// Completed results are memoized per (ticker, risk) so identical repeated
// queries inside the window skip the agent entirely.
type Analysis struct {
	gen          ReportGenerator
	md           MarketData
	results      *cache.TTLCache[*models.AnalysisResult]
	lookbackDays int
	log          zerolog.Logger
}

// New creates the analysis service.
func New(gen ReportGenerator, md MarketData, ttl time.Duration, lookbackDays int, log zerolog.Logger) *Analysis {
	return &Analysis{
		gen:          gen,
		md:           md,
		results:      cache.New[*models.AnalysisResult](ttl),
		lookbackDays: lookbackDays,
		log:          log.With().Str("component", "analysis").Logger(),
	}
}

// Run executes one analysis request. Ticker matching is case-insensitive;
// the normalized uppercase form is used everywhere downstream.
func (a *Analysis) Run(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := dataflows.ValidateSymbol(req.Ticker); err != nil {
		return nil, err
	}
	ticker := dataflows.NormalizeSymbol(req.Ticker)
	key := cacheKey(ticker, req.Risk)

	if res, ok := a.results.Get(key); ok {
		a.log.Debug().Str("ticker", ticker).Msg("Serving cached analysis")
		return res, nil
	}

	snap, err := a.md.GetSnapshot(ticker)
	if err != nil {
		return nil, err
	}

	report, err := a.gen.Generate(ctx, ticker, req.Risk, snap)
	if err != nil {
		return nil, err
	}

	res := &models.AnalysisResult{
		ID:          uuid.NewString(),
		Ticker:      ticker,
		Risk:        req.Risk,
		Report:      report,
		Signal:      extract.Prices(report),
		GeneratedAt: time.Now(),
	}

	a.results.Set(key, res)
	a.log.Info().
		Str("ticker", ticker).
		Bool("has_target", res.Signal.TargetPrice != nil).
		Bool("has_stop", res.Signal.StopLoss != nil).
		Msg("Analysis completed")

	return res, nil
}

// History fetches the daily candles for the chart pane. It intentionally
// bypasses the result cache: prices move even when the report is memoized.
func (a *Analysis) History(ticker string) ([]models.Candle, error) {
	if err := dataflows.ValidateSymbol(ticker); err != nil {
		return nil, err
	}
	return a.md.GetDailyHistory(dataflows.NormalizeSymbol(ticker), a.lookbackDays)
}

// Cached returns the memoized result for (ticker, risk) if still fresh.
func (a *Analysis) Cached(ticker string, risk models.RiskPreference) (*models.AnalysisResult, bool) {
	return a.results.Get(cacheKey(dataflows.NormalizeSymbol(ticker), risk))
}

func cacheKey(ticker string, risk models.RiskPreference) string {
	return fmt.Sprintf("%s|%s", ticker, risk)
}

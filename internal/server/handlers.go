package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"strategist/internal/charts"
	"strategist/internal/dataflows"
	"strategist/internal/models"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

const chartNotice = `<!DOCTYPE html><html><body style="font-family:sans-serif;color:%s;display:flex;align-items:center;justify-content:center;height:90vh;margin:0">%s</body></html>`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]any{
		"DefaultTicker": s.cfg.DefaultTicker,
		"RiskOptions":   []models.RiskPreference{models.RiskLowest, models.RiskMid, models.RiskHigh},
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("Failed to render index page")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "strategist",
	})
}

// handleAnalysis runs the full pipeline for one request. Failures come back
// as a JSON error body; the page shows them inline in the report pane.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}
	req.Risk = models.ParseRiskPreference(string(req.Risk))

	res, err := s.analysis.Run(r.Context(), req)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", req.Ticker).Msg("Analysis failed")
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, res)
}

// handleChart renders the candlestick pane as a standalone HTML document,
// meant to be embedded in an iframe next to the report. Chart failures stay
// inside this pane: the handler always answers with a readable page.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ticker := dataflows.NormalizeSymbol(chi.URLParam(r, "ticker"))

	signal := models.PriceSignal{
		TargetPrice: queryPrice(r, "target"),
		StopLoss:    queryPrice(r, "stop"),
	}

	history, err := s.analysis.History(ticker)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", ticker).Msg("History fetch failed")
		s.writeChartNotice(w, http.StatusBadGateway, "#b91c1c", "Chart error: market data unavailable.")
		return
	}

	var buf bytes.Buffer
	err = charts.Render(&buf, ticker, history, signal)
	switch {
	case errors.Is(err, charts.ErrNoData):
		s.writeChartNotice(w, http.StatusOK, "#92400e", "No chart data available for this ticker.")
		return
	case err != nil:
		s.log.Error().Err(err).Str("ticker", ticker).Msg("Chart rendering failed")
		s.writeChartNotice(w, http.StatusInternalServerError, "#b91c1c", "Chart error: rendering failed.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Error().Err(err).Msg("Failed to write chart response")
	}
}

// writeChartNotice answers the chart pane with a short readable page. The
// messages are our own strings, never user input.
func (s *Server) writeChartNotice(w http.ResponseWriter, status int, color, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := fmt.Fprintf(w, chartNotice, color, message); err != nil {
		s.log.Error().Err(err).Msg("Failed to write chart notice")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func queryPrice(r *http.Request, key string) *float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

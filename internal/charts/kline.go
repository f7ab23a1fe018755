// Package charts renders the candlestick strategy chart.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"strategist/internal/models"
)

// ErrNoData means the price history was empty; the UI shows a "no data"
// notice instead of an empty chart.
var ErrNoData = errors.New("no price data to chart")

const (
	upColor     = "#ef4444"
	downColor   = "#3b82f6"
	targetColor = "#10b981"
	stopColor   = "#ef4444"
)

// BuildKline turns a daily OHLC history into a candlestick chart, with
// dashed horizontal reference lines for whichever of target and stop-loss
// the extractor found. History is assumed date-ascending, as the market
// data client returns it.
func BuildKline(ticker string, history []models.Candle, signal models.PriceSignal) (*charts.Kline, error) {
	if len(history) == 0 {
		return nil, ErrNoData
	}

	dates := make([]string, 0, len(history))
	bars := make([]opts.KlineData, 0, len(history))
	for _, c := range history {
		dates = append(dates, c.Date.Format("2006-01-02"))
		// ECharts candlestick order is open, close, low, high.
		bars = append(bars, opts.KlineData{Value: [4]float64{c.Open, c.Close, c.Low, c.High}})
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s Daily", ticker),
			Width:     "100%",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Daily", ticker)}),
		charts.WithXAxisOpts(opts.XAxis{SplitNumber: 12}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100}),
	)

	kline.SetXAxis(dates).AddSeries("price", bars,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        upColor,
			Color0:       downColor,
			BorderColor:  upColor,
			BorderColor0: downColor,
		}),
	)

	if signal.TargetPrice != nil {
		kline.Overlap(referenceLine(dates, "target", *signal.TargetPrice, targetColor))
	}
	if signal.StopLoss != nil {
		kline.Overlap(referenceLine(dates, "stop-loss", *signal.StopLoss, stopColor))
	}

	return kline, nil
}

// Render writes the chart for ticker as a standalone HTML document. Any
// failure inside the charting library, panics included, comes back as an
// error for the chart pane rather than taking the page down.
func Render(w io.Writer, ticker string, history []models.Candle, signal models.PriceSignal) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart rendering failed: %v", r)
		}
	}()

	kline, err := BuildKline(ticker, history, signal)
	if err != nil {
		return err
	}
	return kline.Render(w)
}

// referenceLine builds an empty line series that exists only to carry a
// dashed horizontal markline at the given price.
func referenceLine(dates []string, name string, price float64, color string) *charts.Line {
	line := charts.NewLine()
	line.SetXAxis(dates).AddSeries(name, []opts.LineData{},
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  fmt.Sprintf("%s %.2f", name, price),
			YAxis: price,
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
			LineStyle: &opts.LineStyle{
				Type:  "dashed",
				Color: color,
				Width: 2,
			},
		}),
	)
	return line
}

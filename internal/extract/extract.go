// Package extract scrapes the trading levels out of a generated report.
// The generator is instructed to emit fixed label lines, but the text is
// still LLM prose, so matching stays deliberately loose: optional currency
// symbol, thousands separators, English or Korean labels.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"strategist/internal/models"
)

const number = `([0-9][0-9,]*(?:\.[0-9]+)?)`

var (
	targetRe   = regexp.MustCompile(`(?i)(?:target\s*price|price\s*target|목표가)\s*[:：]?\s*[*_]*\s*[$₩€£]?\s*[*_]*\s*` + number)
	stopLossRe = regexp.MustCompile(`(?i)(?:stop[\s-]*loss(?:\s*price)?|손절가)\s*[:：]?\s*[*_]*\s*[$₩€£]?\s*[*_]*\s*` + number)
)

// Prices scans reportText for the target-price and stop-loss labels and
// returns whatever it finds. A label the report omitted (or phrased in a way
// the patterns miss) leaves the corresponding field nil; that is not an
// error, downstream just draws one fewer reference line.
func Prices(reportText string) models.PriceSignal {
	return models.PriceSignal{
		TargetPrice: firstPrice(targetRe, reportText),
		StopLoss:    firstPrice(stopLossRe, reportText),
	}
}

func firstPrice(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

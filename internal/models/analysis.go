package models

import "time"

// RiskPreference is the user's risk appetite, as selected in the UI.
type RiskPreference string

const (
	RiskLowest RiskPreference = "Lowest risk"
	RiskMid    RiskPreference = "Mid risk"
	RiskHigh   RiskPreference = "High risk"
)

// ParseRiskPreference maps a UI value to a RiskPreference, defaulting to mid.
func ParseRiskPreference(s string) RiskPreference {
	switch RiskPreference(s) {
	case RiskLowest, RiskMid, RiskHigh:
		return RiskPreference(s)
	default:
		return RiskMid
	}
}

// StopLossBand returns the maximum drawdown the strategy prompt allows
// below the current price for this risk level, as a fraction.
func (r RiskPreference) StopLossBand() float64 {
	switch r {
	case RiskLowest:
		return 0.05
	case RiskHigh:
		return 0.20
	default:
		return 0.10
	}
}

// AnalysisRequest captures the form values at the moment the user presses
// the run button. Immutable once the pipeline starts.
type AnalysisRequest struct {
	Ticker string         `json:"ticker"`
	Risk   RiskPreference `json:"risk"`
}

// PriceSignal holds the prices scraped out of a generated report. A nil
// field means the report omitted that label; it is not an error.
type PriceSignal struct {
	TargetPrice *float64 `json:"target_price,omitempty"`
	StopLoss    *float64 `json:"stop_loss,omitempty"`
}

// AnalysisResult is one completed run of the pipeline.
type AnalysisResult struct {
	ID          string         `json:"id"`
	Ticker      string         `json:"ticker"`
	Risk        RiskPreference `json:"risk"`
	Report      string         `json:"report"`
	Signal      PriceSignal    `json:"signal"`
	GeneratedAt time.Time      `json:"generated_at"`
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrices(t *testing.T) {
	tests := []struct {
		name       string
		report     string
		wantTarget *float64
		wantStop   *float64
	}{
		{
			name:       "english labels with currency and separators",
			report:     "3. Strategy\ntarget price: $1,234.56\nstop loss: $980",
			wantTarget: f(1234.56),
			wantStop:   f(980),
		},
		{
			name:       "korean labels",
			report:     "매매 전략\n목표가: $220\n손절가: $190",
			wantTarget: f(220),
			wantStop:   f(190),
		},
		{
			name:       "markdown emphasis around values",
			report:     "**Target Price: $152.40**\n손절가: **128.00**",
			wantTarget: f(152.40),
			wantStop:   f(128),
		},
		{
			name:       "price target phrasing without currency",
			report:     "Price Target: 310.5\nStop-Loss Price: 270",
			wantTarget: f(310.5),
			wantStop:   f(270),
		},
		{
			name:       "no stop loss label",
			report:     "Target Price: $88.20\nHold for the long term.",
			wantTarget: f(88.20),
			wantStop:   nil,
		},
		{
			name:       "no labels at all",
			report:     "The company looks healthy but we make no call here.",
			wantTarget: nil,
			wantStop:   nil,
		},
		{
			name:       "first match wins",
			report:     "목표가: 100\nRevised 목표가: 120\n손절가: 90",
			wantTarget: f(100),
			wantStop:   f(90),
		},
		{
			name:       "full-width colon and won sign",
			report:     "목표가： ₩85,000\n손절가： ₩72,000",
			wantTarget: f(85000),
			wantStop:   f(72000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Prices(tt.report)
			assertPrice(t, tt.wantTarget, sig.TargetPrice, "target")
			assertPrice(t, tt.wantStop, sig.StopLoss, "stop-loss")
		})
	}
}

func assertPrice(t *testing.T, want, got *float64, label string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got, "%s should be absent", label)
		return
	}
	require.NotNil(t, got, "%s should be present", label)
	assert.InDelta(t, *want, *got, 1e-9, label)
}

func f(v float64) *float64 { return &v }

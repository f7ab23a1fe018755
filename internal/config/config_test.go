package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SERPER_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("GEMINI_API_KEY", "g-key")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERPER_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SERPER_API_KEY", "s-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8501, cfg.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "NVDA", cfg.DefaultTicker)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 365, cfg.LookbackDays)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SERPER_API_KEY", "s-key")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("LOOKBACK_DAYS", "180")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 180, cfg.LookbackDays)
}

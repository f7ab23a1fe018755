package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMissesOnUnknownKey(t *testing.T) {
	c := New[string](time.Hour)

	_, ok := c.Get("NVDA|Mid risk")
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	c := New[string](time.Hour)
	c.Set("NVDA|Mid risk", "report body")

	got, ok := c.Get("NVDA|Mid risk")
	assert.True(t, ok)
	assert.Equal(t, "report body", got)
}

func TestEntriesExpire(t *testing.T) {
	c := New[string](time.Hour)

	current := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("NVDA|Mid risk", "report body")

	current = current.Add(59 * time.Minute)
	_, ok := c.Get("NVDA|Mid risk")
	assert.True(t, ok, "entry should survive inside the window")

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("NVDA|Mid risk")
	assert.False(t, ok, "entry should expire after the window")
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on access")
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	c := New[string](time.Hour)
	c.Set("NVDA|Mid risk", "mid")
	c.Set("NVDA|High risk", "high")

	mid, _ := c.Get("NVDA|Mid risk")
	high, _ := c.Get("NVDA|High risk")
	assert.Equal(t, "mid", mid)
	assert.Equal(t, "high", high)
}

func TestClear(t *testing.T) {
	c := New[int](time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

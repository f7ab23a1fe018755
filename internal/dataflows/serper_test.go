package dataflows

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerperSearch(t *testing.T) {
	var gotKey string
	var gotBody serperRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"organic": [
				{"title": "NVDA earnings beat", "link": "https://example.com/a", "snippet": "Record revenue.", "date": "2 days ago"},
				{"title": "Analyst upgrades", "link": "https://example.com/b", "snippet": "Price target raised."}
			]
		}`))
	}))
	defer srv.Close()

	sc := NewSerperClient("s-key")
	sc.SetBaseURL(srv.URL)

	out, err := sc.Search(context.Background(), "NVDA latest news", 3)
	require.NoError(t, err)

	assert.Equal(t, "s-key", gotKey)
	assert.Equal(t, "NVDA latest news", gotBody.Query)
	assert.Equal(t, 3, gotBody.Num)
	assert.Contains(t, out, "NVDA earnings beat")
	assert.Contains(t, out, "https://example.com/b")
}

func TestSerperSearchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	sc := NewSerperClient("bad-key")
	sc.SetBaseURL(srv.URL)

	_, err := sc.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSerperSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic": []}`))
	}))
	defer srv.Close()

	sc := NewSerperClient("s-key")
	sc.SetBaseURL(srv.URL)

	out, err := sc.Search(context.Background(), "zzz", 3)
	require.NoError(t, err)
	assert.Equal(t, "No results found.", out)
}

func TestSerperSearchMissingKey(t *testing.T) {
	sc := NewSerperClient("")
	_, err := sc.Search(context.Background(), "anything", 3)
	assert.Error(t, err)
}

func TestValidateSymbol(t *testing.T) {
	assert.NoError(t, ValidateSymbol("nvda"))
	assert.NoError(t, ValidateSymbol(" AAPL "))
	assert.Error(t, ValidateSymbol(""))
	assert.Error(t, ValidateSymbol("WAYTOOLONGSYM"))
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "NVDA", NormalizeSymbol(" nvda "))
}

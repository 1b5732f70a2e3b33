package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstitutionalHolders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/institutional-holder/AAPL", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"holder":"Vanguard Group Inc","shares":1279431000,"dateReported":"2024-12-31","change":12500000,"changePercentage":0.99},
			{"holder":"BlackRock Inc","shares":1012890000,"dateReported":"2024-12-31","change":-5200000,"changePercentage":-0.51}
		]`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	holders, err := client.InstitutionalHolders(context.Background(), "aapl")
	require.NoError(t, err)
	require.Len(t, holders, 2)

	assert.Equal(t, "Vanguard Group Inc", holders[0].Holder)
	assert.Equal(t, int64(1279431000), holders[0].Shares)
	assert.Equal(t, float64(1279431000)*approxSharePrice, holders[0].Value)
	assert.Equal(t, int64(-5200000), holders[1].Change)
}

func TestInstitutionalHoldersTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"holder":"h1","shares":1},{"holder":"h2","shares":1},{"holder":"h3","shares":1},
			{"holder":"h4","shares":1},{"holder":"h5","shares":1},{"holder":"h6","shares":1},
			{"holder":"h7","shares":1},{"holder":"h8","shares":1},{"holder":"h9","shares":1},
			{"holder":"h10","shares":1},{"holder":"h11","shares":1},{"holder":"h12","shares":1}
		]`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	holders, err := client.InstitutionalHolders(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Len(t, holders, maxHolders)
}

func TestInstitutionalHoldersAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))

	_, err := client.InstitutionalHolders(context.Background(), "AAPL")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestInstitutionalHoldersEmptyTicker(t *testing.T) {
	client := NewClient("test-key")

	_, err := client.InstitutionalHolders(context.Background(), "  ")
	assert.Error(t, err)
}

package gnews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>検索結果</title>
<item>
<title><![CDATA[半導体関連株が軒並み上昇 - 日本経済新聞]]></title>
<link>https://news.example.com/1</link>
<pubDate>Mon, 24 Aug 2026 01:00:00 GMT</pubDate>
<source url="https://www.nikkei.com">日本経済新聞</source>
</item>
<item>
<title>日銀が政策金利を据え置き - ロイター</title>
<link>https://news.example.com/2</link>
<pubDate>Mon, 24 Aug 2026 02:00:00 GMT</pubDate>
</item>
<item>
<title>S&amp;P500が最高値更新</title>
<link>https://news.example.com/3</link>
<pubDate>Mon, 24 Aug 2026 03:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "トヨタ自動車", r.URL.Query().Get("q"))
		assert.Equal(t, "ja", r.URL.Query().Get("hl"))

		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	headlines, err := client.Search(context.Background(), "トヨタ自動車", 5)
	require.NoError(t, err)
	require.Len(t, headlines, 3)

	assert.Equal(t, "半導体関連株が軒並み上昇 - 日本経済新聞", headlines[0].Title)
	assert.Equal(t, "日本経済新聞", headlines[0].Source)
	assert.Equal(t, "https://news.example.com/1", headlines[0].Link)

	// No <source> element: publisher extracted from the title.
	assert.Equal(t, "ロイター", headlines[1].Source)

	// Neither source nor " - " separator: generic fallback.
	assert.Equal(t, "S&P500が最高値更新", headlines[2].Title)
	assert.Equal(t, "Google News", headlines[2].Source)
}

func TestSearchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	headlines, err := client.Search(context.Background(), "投資", 1)
	require.NoError(t, err)
	assert.Len(t, headlines, 1)
}

func TestSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Search(context.Background(), "投資", 5)
	assert.Error(t, err)
}

func TestMarketNewsDeduplicates(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// Every keyword returns the same feed; duplicates collapse.
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	headlines, err := client.MarketNews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(len(marketKeywords)), calls.Load())
	assert.Len(t, headlines, 3)
}

func TestMarketNewsPartialFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	headlines, err := client.MarketNews(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, headlines)
}

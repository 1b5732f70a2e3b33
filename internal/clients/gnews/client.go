// Package gnews retrieves headlines from Google News RSS search feeds.
// Retrieval is best-effort text scraping: feed hiccups degrade to empty
// results at the call site, they are never fatal to an analysis run.
package gnews

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

const (
	DefaultBaseURL   = "https://news.google.com/rss"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 5 // requests per second

	userAgent = "Mozilla/5.0 (compatible; kabuto/1.0)"
)

// marketKeywords drive the market-wide headline feed.
var marketKeywords = []string{"日経平均", "米国株 S&P500", "投資 市場"}

// Client implements the NewsClient interface
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *common.Logger
	limiter     *rate.Limiter
	marketLimit int
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMarketLimit caps the number of market-wide headlines returned
func WithMarketLimit(limit int) ClientOption {
	return func(c *Client) {
		c.marketLimit = limit
	}
}

// NewClient creates a new Google News RSS client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:      common.NewSilentLogger(),
		marketLimit: 10,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// rssFeed is the subset of the RSS 2.0 shape Google News emits.
type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// Search fetches up to limit headlines matching the keyword.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]models.Headline, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", keyword)
	params.Set("hl", "ja")
	params.Set("gl", "JP")
	params.Set("ceid", "JP:ja")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d for %q", resp.StatusCode, keyword)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	headlines := make([]models.Headline, 0, limit)
	for _, item := range feed.Channel.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = sourceFromTitle(title)
		}
		headlines = append(headlines, models.Headline{
			Title:   title,
			Link:    item.Link,
			PubDate: item.PubDate,
			Source:  source,
		})
		if len(headlines) >= limit {
			break
		}
	}

	c.logger.Debug().Str("keyword", keyword).Int("headlines", len(headlines)).Msg("Fetched news feed")
	return headlines, nil
}

// MarketNews fetches market-wide headlines across the fixed keyword set,
// deduplicated by title.
func (c *Client) MarketNews(ctx context.Context) ([]models.Headline, error) {
	seen := make(map[string]bool)
	var all []models.Headline

	for _, keyword := range marketKeywords {
		headlines, err := c.Search(ctx, keyword, 3)
		if err != nil {
			// Partial results are fine; one dead keyword feed does not
			// sink the rest.
			c.logger.Warn().Err(err).Str("keyword", keyword).Msg("Market news keyword failed")
			continue
		}
		for _, h := range headlines {
			if seen[h.Title] {
				continue
			}
			seen[h.Title] = true
			all = append(all, h)
		}
	}

	if len(all) > c.marketLimit {
		all = all[:c.marketLimit]
	}
	return all, nil
}

// sourceFromTitle extracts the publisher from a "headline - Publisher"
// formatted title, the way Google News encodes it.
func sourceFromTitle(title string) string {
	if idx := strings.LastIndex(title, " - "); idx >= 0 && idx+3 < len(title) {
		return title[idx+3:]
	}
	return "Google News"
}

// Ensure Client implements NewsClient
var _ interfaces.NewsClient = (*Client)(nil)

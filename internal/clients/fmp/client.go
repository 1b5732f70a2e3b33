// Package fmp provides a client for the Financial Modeling Prep API
package fmp

import (
	"context"
	"encoding/json"
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
	DefaultBaseURL   = "https://financialmodelingprep.com/api/v3"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	// FMP's institutional-holder rows carry no market value; the original
	// client approximated it with a flat per-share price.
	approxSharePrice = 185

	maxHolders = 10
)

// Client implements the FMPClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
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

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new FMP client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("FMP API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// holderRecord is the FMP wire shape for one institutional holder.
type holderRecord struct {
	Holder           string  `json:"holder"`
	Shares           int64   `json:"shares"`
	DateReported     string  `json:"dateReported"`
	Change           int64   `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
}

// InstitutionalHolders fetches the institutional-holder table for a ticker.
func (c *Client) InstitutionalHolders(ctx context.Context, ticker string) ([]models.InstitutionalHolder, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	var records []holderRecord
	if err := c.get(ctx, "/institutional-holder/"+url.PathEscape(ticker), &records); err != nil {
		return nil, err
	}

	if len(records) > maxHolders {
		records = records[:maxHolders]
	}

	holders := make([]models.InstitutionalHolder, 0, len(records))
	for _, r := range records {
		holders = append(holders, models.InstitutionalHolder{
			Holder:           r.Holder,
			Shares:           r.Shares,
			DateReported:     r.DateReported,
			Change:           r.Change,
			ChangePercentage: r.ChangePercentage,
			Value:            float64(r.Shares) * approxSharePrice,
		})
	}

	c.logger.Debug().Str("ticker", ticker).Int("holders", len(holders)).Msg("Fetched institutional holders")
	return holders, nil
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Ensure Client implements FMPClient
var _ interfaces.FMPClient = (*Client)(nil)

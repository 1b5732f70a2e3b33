package models

import "time"

// Sentiment is a coarse bullish/bearish/neutral classification of a
// narrative report.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// Analysis is the result of one advisory run. It is ephemeral: generated on
// demand, returned to the caller, never persisted.
type Analysis struct {
	Sentiment       Sentiment            `json:"sentiment"`
	SentimentScore  float64              `json:"sentiment_score"` // -100 to 100
	MarketOverview  string               `json:"market_overview"`
	Vulnerabilities []Vulnerability      `json:"vulnerabilities"`
	Recommendations []Recommendation     `json:"recommendations"`
	SectorAnalysis  []SectorAnalysisItem `json:"sector_analysis"`
	FullAnalysis    string               `json:"full_analysis"`
	GeneratedAt     time.Time            `json:"generated_at"`
}

// Vulnerability flags a portfolio risk factor.
type Vulnerability struct {
	Severity       string   `json:"severity"` // high, medium, low
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AffectedAssets []string `json:"affected_assets"`
}

// Recommendation is one suggested action.
type Recommendation struct {
	Action      string `json:"action"`   // buy, sell, hold, watch
	Priority    string `json:"priority"` // high, medium, low
	Title       string `json:"title"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}

// SectorAnalysisItem is one sector's outlook within an analysis.
type SectorAnalysisItem struct {
	Sector            string  `json:"sector"`
	Outlook           string  `json:"outlook"` // positive, negative, neutral
	Weight            float64 `json:"weight"`
	RecommendedWeight float64 `json:"recommended_weight"`
	Commentary        string  `json:"commentary"`
}

package advisor

import (
	"strings"

	"github.com/hnakamura/kabuto/internal/models"
)

var (
	bullishTerms = []string{"強気", "上昇", "ポジティブ"}
	bearishTerms = []string{"弱気", "下落", "ネガティブ"}
)

// ClassifyText derives a coarse sentiment from generated analysis text.
// Bullish terms are checked first, so mixed text with both polarities
// classifies as bullish. Keyword scanning cannot see negation ("弱気ではない"
// still reads as bearish); the score is a fixed bucket, not a measurement.
func ClassifyText(text string) (models.Sentiment, float64) {
	for _, term := range bullishTerms {
		if strings.Contains(text, term) {
			return models.SentimentBullish, 60
		}
	}
	for _, term := range bearishTerms {
		if strings.Contains(text, term) {
			return models.SentimentBearish, -60
		}
	}
	return models.SentimentNeutral, 0
}

// classifyGain maps a portfolio-level gain percentage to a sentiment bucket.
// Used by the local fallback mode where no generated text exists.
func classifyGain(gainPercent float64) (models.Sentiment, float64) {
	score := clamp(gainPercent*2, -80, 80)
	switch {
	case gainPercent > 5:
		return models.SentimentBullish, score
	case gainPercent < -5:
		return models.SentimentBearish, score
	default:
		return models.SentimentNeutral, score
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

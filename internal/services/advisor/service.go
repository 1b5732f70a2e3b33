// Package advisor synthesizes narrative portfolio analysis, either through
// the Gemini API or, when no key is configured, from local templates.
package advisor

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/fx"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
	"github.com/hnakamura/kabuto/internal/portfolio"
)

// GenerationError is a failed external analysis attempt. There is no
// automatic retry and no fallback substitution: the caller decides whether
// to surface it or re-run.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis generation failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("analysis generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Service implements interfaces.AdvisorService.
type Service struct {
	gemini        interfaces.GeminiClient
	news          interfaces.NewsClient
	table         fx.Table
	logger        *common.Logger
	rng           *rand.Rand
	perStockLimit int
	now           func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithRand sets the randomness source used by the mock report path. Tests
// pass a fixed seed for deterministic output.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithPerStockLimit caps headlines fetched per holding.
func WithPerStockLimit(limit int) Option {
	return func(s *Service) {
		s.perStockLimit = limit
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates the advisor. gemini may be nil, which selects the
// local fallback mode for the whole process lifetime. news may be nil,
// which skips live headline retrieval.
func NewService(gemini interfaces.GeminiClient, news interfaces.NewsClient, table fx.Table, logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		gemini:        gemini,
		news:          news,
		table:         table,
		logger:        logger,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		perStockLimit: 2,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze produces a report for the given assets. The second return value
// reports whether the local mock path was used. Each invocation is
// independent; nothing is cached or persisted.
func (s *Service) Analyze(ctx context.Context, assets []models.Asset, news []models.NewsItem) (*models.Analysis, bool, error) {
	summary, err := portfolio.Summarize(assets, s.table)
	if err != nil {
		// Unknown currency on a persisted asset is a data-integrity
		// fault; surface it, never skip the asset.
		return nil, false, err
	}

	if s.gemini == nil {
		s.logger.Info().Int("assets", len(assets)).Msg("No Gemini key configured, generating mock analysis")
		return s.mockAnalysis(summary, news), true, nil
	}

	prompt := buildPrompt(summary, news, s.fetchHeadlines(ctx, assets))

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("Gemini analysis failed")
		return nil, false, &GenerationError{Message: "gemini request failed", Err: err}
	}
	if text == "" {
		return nil, false, &GenerationError{Message: "gemini returned an empty response"}
	}

	sentiment, score := ClassifyText(text)

	return &models.Analysis{
		Sentiment:       sentiment,
		SentimentScore:  score,
		MarketOverview:  "AI分析による市場概況",
		Vulnerabilities: []models.Vulnerability{},
		Recommendations: []models.Recommendation{},
		SectorAnalysis:  []models.SectorAnalysisItem{},
		FullAnalysis:    text,
		GeneratedAt:     s.now(),
	}, false, nil
}

// headlineSet is the live news context for one analysis run.
type headlineSet struct {
	perStock   map[string][]models.Headline // keyed by asset name
	stockOrder []string
	market     []models.Headline
}

// fetchHeadlines pulls per-holding and market-wide headlines. Best-effort:
// a dead feed contributes an empty list, never an error.
func (s *Service) fetchHeadlines(ctx context.Context, assets []models.Asset) headlineSet {
	set := headlineSet{perStock: make(map[string][]models.Headline)}
	if s.news == nil {
		return set
	}

	for _, a := range assets {
		headlines, err := s.news.Search(ctx, a.Name, s.perStockLimit)
		if err != nil {
			s.logger.Warn().Err(err).Str("asset", a.Name).Msg("Headline fetch failed")
			continue
		}
		if len(headlines) > 0 {
			set.perStock[a.Name] = headlines
			set.stockOrder = append(set.stockOrder, a.Name)
		}
	}

	market, err := s.news.MarketNews(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Market news fetch failed")
	} else {
		set.market = market
	}

	return set
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)

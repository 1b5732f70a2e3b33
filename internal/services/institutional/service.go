// Package institutional resolves a ticker to its institutional-holder
// table through a source chain: Financial Modeling Prep when a key is
// configured, otherwise a best-effort Gemini lookup, otherwise mock data.
package institutional

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

// ErrTickerRequired rejects lookups with a blank ticker.
var ErrTickerRequired = errors.New("ticker is required")

// Service implements interfaces.InstitutionalService.
type Service struct {
	fmp    interfaces.FMPClient
	gemini interfaces.GeminiClient
	logger *common.Logger
	rng    *rand.Rand
}

// Option configures the service.
type Option func(*Service)

// WithRand sets the randomness source used for unknown-ticker mock rows.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// NewService creates the lookup service. Both clients may be nil; the
// source chain skips what is missing and always terminates at mock data.
func NewService(fmp interfaces.FMPClient, gemini interfaces.GeminiClient, logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		fmp:    fmp,
		gemini: gemini,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Holders looks up the holder table for ticker. The second return value
// reports whether the rows are mock or LLM-guessed rather than provider
// data. A provider failure degrades to mock data instead of erroring.
func (s *Service) Holders(ctx context.Context, ticker string) ([]models.InstitutionalHolder, bool, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, false, ErrTickerRequired
	}

	if s.fmp != nil {
		holders, err := s.fmp.InstitutionalHolders(ctx, ticker)
		if err == nil {
			return holders, false, nil
		}
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("FMP lookup failed, using mock data")
		return s.mockFor(ticker), true, nil
	}

	if s.gemini != nil {
		if holders, ok := s.geminiHolders(ctx, ticker); ok {
			return holders, true, nil
		}
	}

	return s.mockFor(ticker), true, nil
}

func (s *Service) mockFor(ticker string) []models.InstitutionalHolder {
	if holders, ok := mockHolders[ticker]; ok {
		return holders
	}
	return randomHolders(s.rng)
}

// geminiHolders asks the model for a holder table. Guesswork, flagged as
// mock by the caller; any failure just moves the chain along.
func (s *Service) geminiHolders(ctx context.Context, ticker string) ([]models.InstitutionalHolder, bool) {
	prompt := fmt.Sprintf(`銘柄「%s」の主要な機関投資家の保有状況を、以下のJSON配列のみで回答してください。説明文は不要です。

[{"holder": "機関名", "shares": 保有株数, "dateReported": "YYYY-MM-DD", "change": 増減株数, "changePercentage": 増減率, "value": 評価額ドル}]`, ticker)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Gemini holder lookup failed")
		return nil, false
	}

	outcome := ParseHolders(text)
	if !outcome.Parsed {
		s.logger.Warn().Str("ticker", ticker).Int("response_bytes", len(outcome.Raw)).Msg("Gemini holder response not parseable")
		return nil, false
	}
	return outcome.Holders, true
}

// Ensure Service implements InstitutionalService
var _ interfaces.InstitutionalService = (*Service)(nil)

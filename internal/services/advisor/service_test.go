package advisor

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/fx"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

type mockGemini struct {
	response string
	err      error
	prompts  []string
}

func (m *mockGemini) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

type mockNews struct {
	searchResults map[string][]models.Headline
	searchErr     error
	market        []models.Headline
	marketErr     error
}

func (m *mockNews) Search(_ context.Context, keyword string, _ int) ([]models.Headline, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchResults[keyword], nil
}

func (m *mockNews) MarketNews(_ context.Context) ([]models.Headline, error) {
	if m.marketErr != nil {
		return nil, m.marketErr
	}
	return m.market, nil
}

func testAssets() []models.Asset {
	return []models.Asset{
		{
			ID: "a1", Name: "トヨタ自動車", Ticker: "7203", Sector: "Consumer Discretionary",
			Currency: "JPY", Quantity: 100, AverageCost: 2500, CurrentPrice: 3000,
		},
	}
}

func newTestService(gemini interfaces.GeminiClient, news interfaces.NewsClient, opts ...Option) *Service {
	base := []Option{
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC) }),
	}
	base = append(base, opts...)
	return NewService(gemini, news, fx.DefaultTable(), common.NewSilentLogger(), base...)
}

func TestAnalyzeMockModeWhenNoGemini(t *testing.T) {
	svc := newTestService(nil, nil)

	analysis, isMock, err := svc.Analyze(context.Background(), testAssets(), nil)
	require.NoError(t, err)
	assert.True(t, isMock)
	require.NotNil(t, analysis)

	// +20% gain crosses the +5% threshold
	assert.Equal(t, models.SentimentBullish, analysis.Sentiment)
	assert.InDelta(t, 40.0, analysis.SentimentScore, 0.001)
	assert.NotEmpty(t, analysis.FullAnalysis)
	assert.NotEmpty(t, analysis.MarketOverview)
	assert.NotEmpty(t, analysis.SectorAnalysis)
}

func TestAnalyzeMockScoreClamped(t *testing.T) {
	svc := newTestService(nil, nil)

	assets := []models.Asset{{
		ID: "a1", Name: "急騰株", Ticker: "9999", Sector: "Technology",
		Currency: "JPY", Quantity: 10, AverageCost: 100, CurrentPrice: 300,
	}}

	analysis, isMock, err := svc.Analyze(context.Background(), assets, nil)
	require.NoError(t, err)
	assert.True(t, isMock)
	// +200% gain, score clamps at 80
	assert.Equal(t, models.SentimentBullish, analysis.Sentiment)
	assert.InDelta(t, 80.0, analysis.SentimentScore, 0.001)
}

func TestAnalyzeMockBearish(t *testing.T) {
	svc := newTestService(nil, nil)

	assets := []models.Asset{{
		ID: "a1", Name: "下落株", Ticker: "8888", Sector: "Finance",
		Currency: "JPY", Quantity: 10, AverageCost: 1000, CurrentPrice: 850,
	}}

	analysis, _, err := svc.Analyze(context.Background(), assets, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SentimentBearish, analysis.Sentiment)
	assert.InDelta(t, -30.0, analysis.SentimentScore, 0.001)
}

func TestAnalyzeMockDeterministicWithSeed(t *testing.T) {
	run := func() *models.Analysis {
		svc := newTestService(nil, nil)
		analysis, _, err := svc.Analyze(context.Background(), testAssets(), nil)
		require.NoError(t, err)
		return analysis
	}

	first := run()
	second := run()
	assert.Equal(t, first.FullAnalysis, second.FullAnalysis)
	assert.Equal(t, first.SectorAnalysis, second.SectorAnalysis)
}

func TestAnalyzeExternalMode(t *testing.T) {
	gemini := &mockGemini{response: "市場は上昇トレンドにあります。保有継続を推奨します。"}
	news := &mockNews{
		searchResults: map[string][]models.Headline{
			"トヨタ自動車": {{Title: "トヨタ、増産を発表", Source: "日経新聞"}},
		},
		market: []models.Headline{{Title: "日経平均が年初来高値", Source: "Bloomberg"}},
	}
	svc := newTestService(gemini, news)

	analysis, isMock, err := svc.Analyze(context.Background(), testAssets(), []models.NewsItem{
		{Title: "決算発表", Source: models.NewsSource{Name: "Reuters"}},
	})
	require.NoError(t, err)
	assert.False(t, isMock)

	assert.Equal(t, models.SentimentBullish, analysis.Sentiment)
	assert.InDelta(t, 60.0, analysis.SentimentScore, 0.001)
	assert.Equal(t, "市場は上昇トレンドにあります。保有継続を推奨します。", analysis.FullAnalysis)

	require.Len(t, gemini.prompts, 1)
	prompt := gemini.prompts[0]
	assert.Contains(t, prompt, "トヨタ自動車")
	assert.Contains(t, prompt, "トヨタ、増産を発表")
	assert.Contains(t, prompt, "日経平均が年初来高値")
	assert.Contains(t, prompt, "決算発表")
	assert.Contains(t, prompt, "¥300,000")
}

func TestAnalyzeExternalNoFallbackOnError(t *testing.T) {
	gemini := &mockGemini{err: errors.New("quota exceeded")}
	svc := newTestService(gemini, nil)

	analysis, isMock, err := svc.Analyze(context.Background(), testAssets(), nil)
	assert.Nil(t, analysis)
	assert.False(t, isMock)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "quota exceeded")
}

func TestAnalyzeExternalEmptyResponse(t *testing.T) {
	gemini := &mockGemini{response: ""}
	svc := newTestService(gemini, nil)

	_, _, err := svc.Analyze(context.Background(), testAssets(), nil)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestAnalyzeNewsFailuresAreBestEffort(t *testing.T) {
	gemini := &mockGemini{response: "中立的な相場環境です。"}
	news := &mockNews{searchErr: errors.New("feed down"), marketErr: errors.New("feed down")}
	svc := newTestService(gemini, news)

	analysis, isMock, err := svc.Analyze(context.Background(), testAssets(), nil)
	require.NoError(t, err)
	assert.False(t, isMock)
	assert.Equal(t, models.SentimentNeutral, analysis.Sentiment)
}

func TestAnalyzeUnknownCurrencyFails(t *testing.T) {
	svc := newTestService(nil, nil)

	assets := []models.Asset{{
		ID: "a1", Name: "Broken", Ticker: "X", Sector: "Other",
		Currency: "EUR", Quantity: 1, AverageCost: 1, CurrentPrice: 1,
	}}

	_, _, err := svc.Analyze(context.Background(), assets, nil)
	var unknownErr *fx.UnknownCurrencyError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "EUR", unknownErr.Currency)
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  models.Sentiment
		score float64
	}{
		{"bullish keyword", "市場は強気な展開が続く", models.SentimentBullish, 60},
		{"rising keyword", "株価は上昇基調にある", models.SentimentBullish, 60},
		{"bearish keyword", "弱気な見方が広がる", models.SentimentBearish, -60},
		{"falling keyword", "大幅な下落が予想される", models.SentimentBearish, -60},
		{"mixed text prefers bullish", "上昇後に下落の可能性", models.SentimentBullish, 60},
		{"no keywords", "横ばいの展開", models.SentimentNeutral, 0},
		{"empty", "", models.SentimentNeutral, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, score := ClassifyText(tt.text)
			assert.Equal(t, tt.want, sentiment)
			assert.InDelta(t, tt.score, score, 0.001)
		})
	}
}

func TestBuildPromptStructure(t *testing.T) {
	gemini := &mockGemini{response: "分析結果"}
	svc := newTestService(gemini, nil)

	_, _, err := svc.Analyze(context.Background(), testAssets(), nil)
	require.NoError(t, err)

	prompt := gemini.prompts[0]
	assert.True(t, strings.Contains(prompt, "証券アナリスト"))
	assert.Contains(t, prompt, "## ポートフォリオサマリー")
	assert.Contains(t, prompt, "## 保有銘柄")
	assert.Contains(t, prompt, "## セクター別内訳")
	assert.NotContains(t, prompt, "## 関連ニュース")
}

package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/kabuto/internal/fx"
	"github.com/hnakamura/kabuto/internal/models"
)

func asset(name, sector, currency string, qty, cost, price float64) models.Asset {
	return models.Asset{
		ID:           name,
		Name:         name,
		Ticker:       name,
		Sector:       sector,
		Currency:     currency,
		Quantity:     qty,
		AverageCost:  cost,
		CurrentPrice: price,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := Summarize(nil, fx.DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalValue)
	assert.Equal(t, 0.0, summary.TotalCost)
	assert.Equal(t, 0.0, summary.TotalGain)
	assert.Equal(t, 0.0, summary.TotalGainPercent)
	assert.Equal(t, 0, summary.AssetCount)
	assert.Nil(t, summary.TopPerformer)
	assert.Nil(t, summary.WorstPerformer)
	assert.Empty(t, summary.SectorBreakdown)
}

func TestSummarizeSingleJPYAsset(t *testing.T) {
	assets := []models.Asset{
		asset("Toyota", "Consumer Discretionary", "JPY", 100, 2500, 2850),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	assert.InDelta(t, 285000, summary.TotalValue, 1e-9)
	assert.InDelta(t, 250000, summary.TotalCost, 1e-9)
	assert.InDelta(t, 35000, summary.TotalGain, 1e-9)
	assert.InDelta(t, 14.0, summary.TotalGainPercent, 1e-9)

	// Single asset is both best and worst.
	require.NotNil(t, summary.TopPerformer)
	require.NotNil(t, summary.WorstPerformer)
	assert.Equal(t, "Toyota", summary.TopPerformer.Asset.Name)
	assert.Equal(t, "Toyota", summary.WorstPerformer.Asset.Name)
}

func TestSummarizeForeignCurrencyAsset(t *testing.T) {
	assets := []models.Asset{
		asset("Apple", "Technology", "USD", 10, 150, 185),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	assert.InDelta(t, 286750, summary.TotalValue, 1e-9)
	assert.InDelta(t, 232500, summary.TotalCost, 1e-9)
	assert.InDelta(t, 54250, summary.TotalGain, 1e-9)
	assert.InDelta(t, 23.33, summary.TotalGainPercent, 0.01)
}

func TestSummarizeGainPercentIdentity(t *testing.T) {
	assets := []models.Asset{
		asset("Toyota", "Consumer Discretionary", "JPY", 100, 2500, 2850),
		asset("Sony", "Technology", "JPY", 50, 12000, 14500),
		asset("Apple", "Technology", "USD", 10, 150, 185),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	require.Greater(t, summary.TotalCost, 0.0)
	want := (summary.TotalValue - summary.TotalCost) / summary.TotalCost * 100
	assert.InDelta(t, want, summary.TotalGainPercent, 1e-9)
}

func TestSummarizeSectorWeightsSumTo100(t *testing.T) {
	assets := []models.Asset{
		asset("Toyota", "Consumer Discretionary", "JPY", 100, 2500, 2850),
		asset("Sony", "Technology", "JPY", 50, 12000, 14500),
		asset("MUFG", "Finance", "JPY", 300, 1200, 1580),
		asset("Apple", "Technology", "USD", 10, 150, 185),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	total := 0.0
	for _, sb := range summary.SectorBreakdown {
		total += sb.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestSummarizeSectorOrdering(t *testing.T) {
	// Equal values in two sectors: order falls back to label.
	assets := []models.Asset{
		asset("B", "Utilities", "JPY", 10, 100, 100),
		asset("A", "Energy", "JPY", 10, 100, 100),
		asset("C", "Technology", "JPY", 10, 100, 200),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	require.Len(t, summary.SectorBreakdown, 3)
	assert.Equal(t, "Technology", summary.SectorBreakdown[0].Sector)
	assert.Equal(t, "Energy", summary.SectorBreakdown[1].Sector)
	assert.Equal(t, "Utilities", summary.SectorBreakdown[2].Sector)
}

func TestSummarizePerformerTieBreak(t *testing.T) {
	// Identical gain percent: the earlier asset wins both slots.
	assets := []models.Asset{
		asset("First", "Technology", "JPY", 10, 100, 110),
		asset("Second", "Finance", "JPY", 20, 200, 220),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	require.NotNil(t, summary.TopPerformer)
	require.NotNil(t, summary.WorstPerformer)
	assert.Equal(t, "First", summary.TopPerformer.Asset.Name)
	assert.Equal(t, "First", summary.WorstPerformer.Asset.Name)
}

func TestSummarizeBestAndWorst(t *testing.T) {
	assets := []models.Asset{
		asset("Flat", "Technology", "JPY", 10, 100, 100),
		asset("Winner", "Finance", "JPY", 10, 100, 150),
		asset("Loser", "Energy", "JPY", 10, 100, 50),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, "Winner", summary.TopPerformer.Asset.Name)
	assert.Equal(t, "Loser", summary.WorstPerformer.Asset.Name)
	assert.InDelta(t, 50.0, summary.TopPerformer.GainPercent, 1e-9)
	assert.InDelta(t, -50.0, summary.WorstPerformer.GainPercent, 1e-9)
}

func TestSummarizeUnknownCurrencyPropagates(t *testing.T) {
	assets := []models.Asset{
		asset("Toyota", "Consumer Discretionary", "JPY", 100, 2500, 2850),
		asset("Stale", "Other", "CHF", 1, 100, 100),
	}

	_, err := Summarize(assets, fx.DefaultTable())
	require.Error(t, err)

	var unknownErr *fx.UnknownCurrencyError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "CHF", unknownErr.Currency)
}

func TestSummarizeZeroCostDefended(t *testing.T) {
	// AverageCost <= 0 is rejected at input time, but a corrupted record
	// must degrade to 0% rather than produce Inf.
	assets := []models.Asset{
		{ID: "x", Name: "Corrupt", Ticker: "X", Sector: "Other", Currency: "JPY", Quantity: 10, AverageCost: 0, CurrentPrice: 100},
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)
	require.Len(t, summary.Holdings, 1)
	assert.Equal(t, 0.0, summary.Holdings[0].GainPercent)
	assert.Equal(t, 0.0, summary.TotalGainPercent)
}

func TestSummarizeWeights(t *testing.T) {
	assets := []models.Asset{
		asset("A", "Technology", "JPY", 1, 100, 300),
		asset("B", "Finance", "JPY", 1, 100, 100),
	}

	summary, err := Summarize(assets, fx.DefaultTable())
	require.NoError(t, err)

	assert.InDelta(t, 75.0, summary.Holdings[0].WeightPct, 1e-9)
	assert.InDelta(t, 25.0, summary.Holdings[1].WeightPct, 1e-9)
}

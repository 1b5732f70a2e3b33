package fx

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentity(t *testing.T) {
	table := DefaultTable()

	for _, amount := range []float64{0, 1, 2500, 1234567.89, -42} {
		got, err := table.Normalize(amount, ReportingCurrency)
		require.NoError(t, err)
		assert.Equal(t, amount, got)
	}
}

func TestNormalizeUSD(t *testing.T) {
	table := DefaultTable()

	got, err := table.Normalize(10, "USD")
	require.NoError(t, err)
	assert.Equal(t, 1550.0, got)
}

func TestNormalizeUnknownCurrency(t *testing.T) {
	table := DefaultTable()

	got, err := table.Normalize(100, "EUR")
	require.Error(t, err)
	assert.False(t, math.IsNaN(got))
	assert.Equal(t, 0.0, got)

	var unknownErr *UnknownCurrencyError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "EUR", unknownErr.Currency)
}

func TestKnows(t *testing.T) {
	table := DefaultTable()

	assert.True(t, table.Knows("JPY"))
	assert.True(t, table.Knows("USD"))
	assert.False(t, table.Knows("GBP"))
	assert.False(t, table.Knows(""))
}

func TestWithRateDoesNotMutate(t *testing.T) {
	table := DefaultTable()
	simulated := table.WithRate("USD", 140)

	got, err := simulated.Normalize(1, "USD")
	require.NoError(t, err)
	assert.Equal(t, 140.0, got)

	base, err := table.Normalize(1, "USD")
	require.NoError(t, err)
	assert.Equal(t, 155.0, base)
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/kabuto/internal/common"
)

func TestNewAssetStoreNoAddressUsesDemoData(t *testing.T) {
	config := common.NewDefaultConfig()
	config.Storage.Address = ""

	store, degraded := NewAssetStore(common.NewSilentLogger(), config)
	defer store.Close()

	assert.True(t, degraded)

	assets, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 6)
	assert.Equal(t, "トヨタ自動車", assets[0].Name)
	assert.Equal(t, "Microsoft", assets[5].Name)
}

func TestNewAssetStoreUnreachableAddressDegrades(t *testing.T) {
	config := common.NewDefaultConfig()
	config.Storage.Address = "ws://127.0.0.1:1/rpc"
	config.Storage.ConnectTimeout = "2s"

	store, degraded := NewAssetStore(common.NewSilentLogger(), config)
	defer store.Close()

	assert.True(t, degraded)

	assets, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, assets, 6)
}

func TestDemoAssetsAreValid(t *testing.T) {
	for _, a := range DemoAssets() {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Ticker)
		assert.Positive(t, a.Quantity)
		assert.Positive(t, a.AverageCost)
		assert.Positive(t, a.CurrentPrice)
	}
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

func validForm() models.AssetForm {
	return models.AssetForm{
		Name:         "トヨタ自動車",
		Ticker:       "7203",
		Sector:       "Consumer Discretionary",
		Currency:     "JPY",
		Quantity:     100,
		AverageCost:  2500,
		CurrentPrice: 2850,
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	a, err := store.Create(context.Background(), validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, "トヨタ自動車", a.Name)
}

func TestCreateGetRoundTrip(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	created, err := store.Create(context.Background(), validForm())
	require.NoError(t, err)

	got, err := store.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissing(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, interfaces.ErrAssetNotFound)
}

func TestListCreationOrder(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		form := validForm()
		form.Name = name
		_, err := store.Create(context.Background(), form)
		require.NoError(t, err)
	}

	assets, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 3)
	for i, name := range names {
		assert.Equal(t, name, assets[i].Name)
	}
}

func TestUpdate(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	created, err := store.Create(context.Background(), validForm())
	require.NoError(t, err)

	form := validForm()
	form.CurrentPrice = 3000
	updated, err := store.Update(context.Background(), created.ID, form)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3000.0, updated.CurrentPrice)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateKeepsNoteWhenFormOmitsIt(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	form := validForm()
	form.Note = &models.Note{Title: "買い増し検討", Content: "決算後に判断", UpdatedAt: time.Now()}
	created, err := store.Create(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, created.Note)

	updated, err := store.Update(context.Background(), created.ID, validForm())
	require.NoError(t, err)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "買い増し検討", updated.Note.Title)
}

func TestUpdateMissing(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	_, err := store.Update(context.Background(), "nope", validForm())
	assert.ErrorIs(t, err, interfaces.ErrAssetNotFound)
}

func TestDelete(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	created, err := store.Create(context.Background(), validForm())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), created.ID))

	_, err = store.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, interfaces.ErrAssetNotFound)

	assert.ErrorIs(t, store.Delete(context.Background(), created.ID), interfaces.ErrAssetNotFound)
}

func TestReturnedAssetIsACopy(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	created, err := store.Create(context.Background(), validForm())
	require.NoError(t, err)

	created.Name = "mutated"

	got, err := store.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "トヨタ自動車", got.Name)
}

func TestSeedPreservesIDs(t *testing.T) {
	store := NewStore(common.NewSilentLogger())
	defer store.Close()

	seeded := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	store.Seed([]models.Asset{
		{ID: "demo-1", Name: "Apple", Ticker: "AAPL", Sector: "Technology", Currency: "USD", Quantity: 10, AverageCost: 150, CurrentPrice: 185, CreatedAt: seeded, UpdatedAt: seeded},
	})

	got, err := store.Get(context.Background(), "demo-1")
	require.NoError(t, err)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, seeded, got.CreatedAt)
}

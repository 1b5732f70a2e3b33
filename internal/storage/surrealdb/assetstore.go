// Package surrealdb persists assets in SurrealDB.
package surrealdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

// assetSelectFields aliases asset_id to id so rows map straight onto
// models.Asset.
const assetSelectFields = `asset_id as id, name, ticker, sector, currency,
	quantity, average_cost, current_price, note, created_at, updated_at`

// AssetStore implements interfaces.AssetStore using SurrealDB.
type AssetStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

// NewAssetStore connects to SurrealDB and ensures the asset table exists.
func NewAssetStore(logger *common.Logger, config *common.Config) (*AssetStore, error) {
	ctx := context.Background()

	db, err := surrealdb.New(config.Storage.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": config.Storage.Username,
		"pass": config.Storage.Password,
	}); err != nil {
		return nil, fmt.Errorf("failed to sign in to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, config.Storage.Namespace, config.Storage.Database); err != nil {
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	// SurrealDB v3 errors on querying non-existent tables
	if _, err := surrealdb.Query[any](ctx, db, "DEFINE TABLE IF NOT EXISTS asset SCHEMALESS", nil); err != nil {
		return nil, fmt.Errorf("failed to define asset table: %w", err)
	}

	logger.Info().
		Str("address", config.Storage.Address).
		Str("namespace", config.Storage.Namespace).
		Str("database", config.Storage.Database).
		Msg("SurrealDB asset store initialized")

	return &AssetStore{db: db, logger: logger}, nil
}

// NewAssetStoreWithDB wraps an existing connection. Used by tests.
func NewAssetStoreWithDB(db *surrealdb.DB, logger *common.Logger) (*AssetStore, error) {
	ctx := context.Background()
	if _, err := surrealdb.Query[any](ctx, db, "DEFINE TABLE IF NOT EXISTS asset SCHEMALESS", nil); err != nil {
		return nil, fmt.Errorf("failed to define asset table: %w", err)
	}
	return &AssetStore{db: db, logger: logger}, nil
}

func (s *AssetStore) List(ctx context.Context) ([]models.Asset, error) {
	sql := "SELECT " + assetSelectFields + " FROM asset ORDER BY created_at ASC, asset_id ASC"

	results, err := surrealdb.Query[[]models.Asset](ctx, s.db, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.Asset{}, nil
	}
	return (*results)[0].Result, nil
}

func (s *AssetStore) Get(ctx context.Context, id string) (*models.Asset, error) {
	sql := "SELECT " + assetSelectFields + " FROM $rid"
	vars := map[string]any{
		"rid": surrealmodels.NewRecordID("asset", id),
	}

	results, err := surrealdb.Query[[]models.Asset](ctx, s.db, sql, vars)
	if err != nil {
		if isNotFoundError(err) {
			return nil, interfaces.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, interfaces.ErrAssetNotFound
	}
	return &(*results)[0].Result[0], nil
}

func (s *AssetStore) Create(ctx context.Context, form models.AssetForm) (*models.Asset, error) {
	now := time.Now()
	a := &models.Asset{
		ID:        fmt.Sprintf("asset_%s", uuid.New().String()[:8]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	form.Apply(a)

	if err := s.upsert(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return a, nil
}

func (s *AssetStore) Update(ctx context.Context, id string, form models.AssetForm) (*models.Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Apply(a)
	a.UpdatedAt = time.Now()

	if err := s.upsert(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return a, nil
}

func (s *AssetStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	_, err := surrealdb.Delete[models.Asset](ctx, s.db, surrealmodels.NewRecordID("asset", id))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (s *AssetStore) upsert(ctx context.Context, a *models.Asset) error {
	sql := `UPSERT $rid SET
		asset_id = $asset_id, name = $name, ticker = $ticker, sector = $sector,
		currency = $currency, quantity = $quantity, average_cost = $average_cost,
		current_price = $current_price, note = $note,
		created_at = $created_at, updated_at = $updated_at`
	vars := map[string]any{
		"rid":           surrealmodels.NewRecordID("asset", a.ID),
		"asset_id":      a.ID,
		"name":          a.Name,
		"ticker":        a.Ticker,
		"sector":        a.Sector,
		"currency":      a.Currency,
		"quantity":      a.Quantity,
		"average_cost":  a.AverageCost,
		"current_price": a.CurrentPrice,
		"note":          a.Note,
		"created_at":    a.CreatedAt,
		"updated_at":    a.UpdatedAt,
	}

	_, err := surrealdb.Query[any](ctx, s.db, sql, vars)
	return err
}

func (s *AssetStore) Close() error {
	s.db.Close(context.Background())
	return nil
}

func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no record")
}

// Compile-time check
var _ interfaces.AssetStore = (*AssetStore)(nil)

// Package interfaces defines the contracts between kabuto's components.
package interfaces

import (
	"context"
	"errors"

	"github.com/hnakamura/kabuto/internal/models"
)

// ErrAssetNotFound is returned by store operations addressing an id that
// does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// AssetStore is the CRUD contract over the tracked asset collection. The
// store assigns ids and timestamps; callers never set them. List order is
// stable within a session but otherwise unspecified.
type AssetStore interface {
	List(ctx context.Context) ([]models.Asset, error)
	Get(ctx context.Context, id string) (*models.Asset, error)
	Create(ctx context.Context, form models.AssetForm) (*models.Asset, error)
	Update(ctx context.Context, id string, form models.AssetForm) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Package memory is the in-process asset store used when no database is
// reachable. Contents vanish on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

// Store implements interfaces.AssetStore with a mutex-guarded map. List
// returns assets in creation order.
type Store struct {
	mu     sync.RWMutex
	assets map[string]*models.Asset
	order  []string
	logger *common.Logger
	now    func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore(logger *common.Logger) *Store {
	return &Store{
		assets: make(map[string]*models.Asset),
		logger: logger,
		now:    time.Now,
	}
}

// Seed preloads assets as-is, keeping their ids and timestamps. Existing
// ids are overwritten.
func (s *Store) Seed(assets []models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range assets {
		a := assets[i]
		if _, exists := s.assets[a.ID]; !exists {
			s.order = append(s.order, a.ID)
		}
		s.assets[a.ID] = &a
	}
}

func (s *Store) List(_ context.Context) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Asset, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.assets[id])
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, id string) (*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, interfaces.ErrAssetNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *Store) Create(_ context.Context, form models.AssetForm) (*models.Asset, error) {
	now := s.now()
	a := &models.Asset{
		ID:        fmt.Sprintf("asset_%s", uuid.New().String()[:8]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	form.Apply(a)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[a.ID] = a
	s.order = append(s.order, a.ID)

	copied := *a
	return &copied, nil
}

func (s *Store) Update(_ context.Context, id string, form models.AssetForm) (*models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, interfaces.ErrAssetNotFound
	}
	form.Apply(a)
	a.UpdatedAt = s.now()

	copied := *a
	return &copied, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[id]; !ok {
		return interfaces.ErrAssetNotFound
	}
	delete(s.assets, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

// Compile-time check
var _ interfaces.AssetStore = (*Store)(nil)

package storage

import (
	"time"

	"github.com/hnakamura/kabuto/internal/common"
	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/storage/memory"
	"github.com/hnakamura/kabuto/internal/storage/surrealdb"
)

// NewAssetStore selects the backend. SurrealDB is attempted only when an
// address is configured, with a bounded wait; on failure or timeout the
// process degrades one-way to an in-memory store seeded with demo data.
// The second return value reports that degradation.
func NewAssetStore(logger *common.Logger, config *common.Config) (interfaces.AssetStore, bool) {
	if config.Storage.Address == "" {
		logger.Info().Msg("No storage address configured, using in-memory demo store")
		return demoStore(logger), true
	}

	type result struct {
		store *surrealdb.AssetStore
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		store, err := surrealdb.NewAssetStore(logger, config)
		ch <- result{store, err}
	}()

	timeout := config.Storage.GetConnectTimeout()
	select {
	case r := <-ch:
		if r.err == nil {
			return r.store, false
		}
		logger.Warn().Err(r.err).Str("address", config.Storage.Address).Msg("SurrealDB unavailable, using in-memory demo store")
	case <-time.After(timeout):
		logger.Warn().Dur("timeout", timeout).Str("address", config.Storage.Address).Msg("SurrealDB connect timed out, using in-memory demo store")
		// Close the connection if it lands after the deadline.
		go func() {
			if r := <-ch; r.err == nil {
				r.store.Close()
			}
		}()
	}

	return demoStore(logger), true
}

func demoStore(logger *common.Logger) *memory.Store {
	store := memory.NewStore(logger)
	store.Seed(DemoAssets())
	return store
}

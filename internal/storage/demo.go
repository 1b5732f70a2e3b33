// Package storage selects the asset store backend: SurrealDB when an
// address is configured and reachable, otherwise an in-memory store seeded
// with demo data.
package storage

import (
	"time"

	"github.com/hnakamura/kabuto/internal/models"
)

var demoSeedTime = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

// DemoAssets is the portfolio shown when no database is reachable.
func DemoAssets() []models.Asset {
	return []models.Asset{
		{
			ID: "demo-1", Name: "トヨタ自動車", Ticker: "7203", Sector: "Consumer Discretionary",
			Currency: "JPY", Quantity: 100, AverageCost: 2500, CurrentPrice: 2850,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
		{
			ID: "demo-2", Name: "ソニーグループ", Ticker: "6758", Sector: "Technology",
			Currency: "JPY", Quantity: 50, AverageCost: 12000, CurrentPrice: 14500,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
		{
			ID: "demo-3", Name: "任天堂", Ticker: "7974", Sector: "Technology",
			Currency: "JPY", Quantity: 20, AverageCost: 6500, CurrentPrice: 8200,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
		{
			ID: "demo-4", Name: "三菱UFJフィナンシャル", Ticker: "8306", Sector: "Finance",
			Currency: "JPY", Quantity: 300, AverageCost: 1200, CurrentPrice: 1580,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
		{
			ID: "demo-5", Name: "Apple", Ticker: "AAPL", Sector: "Technology",
			Currency: "USD", Quantity: 10, AverageCost: 150, CurrentPrice: 185,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
		{
			ID: "demo-6", Name: "Microsoft", Ticker: "MSFT", Sector: "Technology",
			Currency: "USD", Quantity: 5, AverageCost: 380, CurrentPrice: 420,
			CreatedAt: demoSeedTime, UpdatedAt: demoSeedTime,
		},
	}
}

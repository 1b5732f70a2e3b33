package interfaces

import (
	"context"

	"github.com/hnakamura/kabuto/internal/models"
)

// AdvisorService generates a narrative analysis for a set of assets.
type AdvisorService interface {
	// Analyze returns the report and whether it came from the local mock
	// path (no external credentials) rather than the LLM.
	Analyze(ctx context.Context, assets []models.Asset, news []models.NewsItem) (*models.Analysis, bool, error)
}

// InstitutionalService resolves a ticker to its institutional-holder table.
type InstitutionalService interface {
	// Holders returns the holder list and whether it is mock data.
	Holders(ctx context.Context, ticker string) ([]models.InstitutionalHolder, bool, error)
}

package interfaces

import (
	"context"

	"github.com/hnakamura/kabuto/internal/models"
)

// GeminiClient is the text-generation contract: send a prompt, receive a
// completion. Implementations may be nil-checked by services to select the
// local fallback path.
type GeminiClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// FMPClient fetches institutional-holder records from Financial Modeling
// Prep.
type FMPClient interface {
	InstitutionalHolders(ctx context.Context, ticker string) ([]models.InstitutionalHolder, error)
}

// NewsClient retrieves headlines from Google News RSS. Both calls are
// best-effort; an empty result with nil error means no matches.
type NewsClient interface {
	Search(ctx context.Context, keyword string, limit int) ([]models.Headline, error)
	MarketNews(ctx context.Context) ([]models.Headline, error)
}

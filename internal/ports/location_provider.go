package ports

import (
	"city-explorer-service/internal/domain"
	"context"
)

// Contract for resolving a free-text place query into ranked candidates.
type LocationProvider interface {
	// Return candidates in the provider's relevance order (best match first).
	SearchLocation(ctx context.Context, query string) ([]domain.LocationCandidate, error)
}

package ports

import (
	"city-explorer-service/internal/domain"
	"context"
)

// Contract for searching businesses near a coordinate pair.
type ReviewProvider interface {
	SearchBusinesses(ctx context.Context, lat, lon string) ([]domain.Business, error)
}

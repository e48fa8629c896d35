package ports

import (
	"city-explorer-service/internal/domain"
	"context"
)

// Contract for retrieving a multi-day forecast for a coordinate pair.
type WeatherProvider interface {
	// Return daily forecast entries in chronological order.
	DailyForecast(ctx context.Context, lat, lon string) (domain.ForecastPayload, error)
}

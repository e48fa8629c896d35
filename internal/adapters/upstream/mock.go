package upstream

import (
	"city-explorer-service/internal/domain"
	"context"
)

// MockLocationProvider returns canned candidates, keyed by query.
type MockLocationProvider struct {
	Results map[string][]domain.LocationCandidate
	Err     error
}

func (p *MockLocationProvider) SearchLocation(ctx context.Context, query string) ([]domain.LocationCandidate, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Results[query], nil
}

// MockWeatherProvider returns the same payload for every coordinate pair.
type MockWeatherProvider struct {
	Payload domain.ForecastPayload
	Err     error
}

func (p *MockWeatherProvider) DailyForecast(ctx context.Context, lat, lon string) (domain.ForecastPayload, error) {
	if p.Err != nil {
		return domain.ForecastPayload{}, p.Err
	}
	return p.Payload, nil
}

// MockReviewProvider returns the same businesses for every coordinate pair.
type MockReviewProvider struct {
	Businesses []domain.Business
	Err        error
}

func (p *MockReviewProvider) SearchBusinesses(ctx context.Context, lat, lon string) ([]domain.Business, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Businesses, nil
}

package services

import (
	"city-explorer-service/internal/domain"
	"city-explorer-service/internal/platform/obs"
	"city-explorer-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LookupLocation geocodes a free-text query and returns the best match.
func LookupLocation(
	ctx context.Context,
	provider ports.LocationProvider,
	query string,
) (_ domain.Location, err error) {
	defer obs.Time(ctx, "services.LookupLocation")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Location{}, errors.New("lookup location: query must not be empty")
	}

	candidates, err := provider.SearchLocation(ctx, query)
	if err != nil {
		return domain.Location{}, fmt.Errorf("lookup location %q: %w", query, err)
	}

	return FormatLocation(candidates)
}

// LookupWeather fetches the daily forecast for a coordinate pair and trims it to a week.
// Dates are rendered in loc.
func LookupWeather(
	ctx context.Context,
	provider ports.WeatherProvider,
	lat, lon string,
	loc *time.Location,
) (_ []domain.Forecast, err error) {
	defer obs.Time(ctx, "services.LookupWeather")(&err)

	payload, err := provider.DailyForecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("lookup weather lat=%s lon=%s: %w", lat, lon, err)
	}

	return FormatWeatherIn(payload, loc)
}

// LookupReviews searches businesses near a coordinate pair.
func LookupReviews(
	ctx context.Context,
	provider ports.ReviewProvider,
	lat, lon string,
) (_ []domain.Listing, err error) {
	defer obs.Time(ctx, "services.LookupReviews")(&err)

	businesses, err := provider.SearchBusinesses(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("lookup reviews lat=%s lon=%s: %w", lat, lon, err)
	}

	return FormatReviews(businesses), nil
}

package services

import (
	"city-explorer-service/internal/domain"
	"errors"
	"fmt"
	"time"
)

// Number of forecast days returned to clients (one week).
const forecastDays = 7

// Layout matching JavaScript's Date.toDateString, e.g. "Mon Mar 01 2021".
const forecastDateLayout = "Mon Jan 02 2006"

var (
	ErrNoLocationCandidates = errors.New("no location candidates")
	ErrMalformedForecast    = errors.New("malformed forecast entry")
)

// FormatLocation reduces geocoding candidates to the first (best) match.
// Coordinates are copied as-is; the provider's ordering is trusted.
func FormatLocation(candidates []domain.LocationCandidate) (domain.Location, error) {
	if len(candidates) == 0 {
		return domain.Location{}, fmt.Errorf("format location: %w", ErrNoLocationCandidates)
	}

	best := candidates[0]
	return domain.Location{
		Query:     best.DisplayName,
		Latitude:  best.Lat,
		Longitude: best.Lon,
	}, nil
}

// FormatWeather renders at most a week of forecast days using the local time zone.
func FormatWeather(payload domain.ForecastPayload) ([]domain.Forecast, error) {
	return FormatWeatherIn(payload, time.Local)
}

// FormatWeatherIn is FormatWeather with an explicit time zone for the date strings.
func FormatWeatherIn(payload domain.ForecastPayload, loc *time.Location) ([]domain.Forecast, error) {
	n := min(len(payload.Data), forecastDays)

	out := make([]domain.Forecast, 0, n)
	for i, day := range payload.Data[:n] {
		if day.Weather == nil {
			return nil, fmt.Errorf("format weather: entry %d missing weather: %w", i, ErrMalformedForecast)
		}

		out = append(out, domain.Forecast{
			Description: day.Weather.Description,
			Time:        time.Unix(day.Ts, 0).In(loc).Format(forecastDateLayout),
		})
	}

	return out, nil
}

// FormatReviews projects every business onto a listing card, keeping order and length.
func FormatReviews(businesses []domain.Business) []domain.Listing {
	out := make([]domain.Listing, 0, len(businesses))
	for _, b := range businesses {
		var price *string
		if b.Price != nil {
			p := *b.Price
			price = &p
		}

		out = append(out, domain.Listing{
			Name:     b.Name,
			ImageURL: b.ImageURL,
			Price:    price,
			Rating:   b.Rating,
			URL:      b.URL,
		})
	}

	return out
}

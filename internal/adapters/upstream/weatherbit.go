package upstream

import (
	"city-explorer-service/internal/domain"
	"city-explorer-service/internal/platform/obs"
	"context"
	"fmt"
	"net/url"
	"time"
)

// WeatherbitProvider implements ports.WeatherProvider using the Weatherbit daily forecast API.
type WeatherbitProvider struct {
	client
}

func NewWeatherbitProvider(baseURL, apiKey string, timeout time.Duration) (*WeatherbitProvider, error) {
	c, err := newClient(baseURL, apiKey, timeout)
	if err != nil {
		return nil, fmt.Errorf("new Weatherbit provider: %w", err)
	}
	return &WeatherbitProvider{client: c}, nil
}

func (p *WeatherbitProvider) DailyForecast(
	ctx context.Context,
	lat, lon string,
) (_ domain.ForecastPayload, err error) {
	defer obs.Time(ctx, "weatherbit.DailyForecast")(&err)

	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("key", p.apiKey)

	req, err := p.newRequest(ctx, "/v2.0/forecast/daily", q)
	if err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("daily forecast: %w", err)
	}

	var payload domain.ForecastPayload
	if err := p.getJSON(req, &payload); err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("daily forecast: %w", err)
	}
	if err := validateStruct(payload); err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("daily forecast: %w", err)
	}

	return payload, nil
}

package upstream

import (
	"city-explorer-service/internal/domain"
	"city-explorer-service/internal/platform/obs"
	"context"
	"fmt"
	"net/url"
	"time"
)

// YelpProvider implements ports.ReviewProvider with the Yelp Fusion business search.
// Unlike the other providers the key travels as a bearer token, not a query param.
type YelpProvider struct {
	client
}

func NewYelpProvider(baseURL, apiKey string, timeout time.Duration) (*YelpProvider, error) {
	c, err := newClient(baseURL, apiKey, timeout)
	if err != nil {
		return nil, fmt.Errorf("new Yelp provider: %w", err)
	}
	return &YelpProvider{client: c}, nil
}

func (p *YelpProvider) SearchBusinesses(
	ctx context.Context,
	lat, lon string,
) (_ []domain.Business, err error) {
	defer obs.Time(ctx, "yelp.SearchBusinesses")(&err)

	q := url.Values{}
	q.Set("latitude", lat)
	q.Set("longitude", lon)

	req, err := p.newRequest(ctx, "/v3/businesses/search", q)
	if err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	var payload domain.BusinessSearchPayload
	if err := p.getJSON(req, &payload); err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}
	if err := validateStruct(payload); err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}

	return payload.Businesses, nil
}

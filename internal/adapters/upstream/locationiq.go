package upstream

import (
	"city-explorer-service/internal/domain"
	"city-explorer-service/internal/platform/obs"
	"context"
	"fmt"
	"net/url"
	"time"
)

// LocationIQProvider implements ports.LocationProvider against the LocationIQ search API.
type LocationIQProvider struct {
	client
}

func NewLocationIQProvider(baseURL, apiKey string, timeout time.Duration) (*LocationIQProvider, error) {
	c, err := newClient(baseURL, apiKey, timeout)
	if err != nil {
		return nil, fmt.Errorf("new LocationIQ provider: %w", err)
	}
	return &LocationIQProvider{client: c}, nil
}

// SearchLocation returns matches for query in LocationIQ's relevance order.
// Only the first match is checked for the required fields.
func (p *LocationIQProvider) SearchLocation(
	ctx context.Context,
	query string,
) (_ []domain.LocationCandidate, err error) {
	defer obs.Time(ctx, "locationiq.SearchLocation")(&err)

	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("q", query)
	q.Set("format", "json")

	req, err := p.newRequest(ctx, "/v1/search.php", q)
	if err != nil {
		return nil, fmt.Errorf("search location: %w", err)
	}

	var candidates []domain.LocationCandidate
	if err := p.getJSON(req, &candidates); err != nil {
		return nil, fmt.Errorf("search location: %w", err)
	}

	// Only the best match is ever used; an empty result is left to the caller.
	if len(candidates) > 0 {
		if err := validateStruct(candidates[0]); err != nil {
			return nil, fmt.Errorf("search location: best candidate: %w", err)
		}
	}

	return candidates, nil
}

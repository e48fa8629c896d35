package services

import (
	"city-explorer-service/internal/adapters/upstream"
	"city-explorer-service/internal/domain"
	"context"
	"errors"
	"testing"
	"time"
)

func TestLookupLocation(t *testing.T) {
	provider := &upstream.MockLocationProvider{
		Results: map[string][]domain.LocationCandidate{
			"portland": {
				{DisplayName: "Portland, Multnomah County, Oregon, USA", Lat: "45.5202471", Lon: "-122.6741949"},
				{DisplayName: "Portland, Cumberland County, Maine, USA", Lat: "43.6610277", Lon: "-70.2548596"},
			},
		},
	}

	got, err := LookupLocation(context.Background(), provider, "  portland ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Query != "Portland, Multnomah County, Oregon, USA" {
		t.Fatalf("Query = %q", got.Query)
	}
	if got.Latitude != "45.5202471" || got.Longitude != "-122.6741949" {
		t.Fatalf("coords = %s,%s", got.Latitude, got.Longitude)
	}
}

func TestLookupLocationNoResults(t *testing.T) {
	provider := &upstream.MockLocationProvider{}

	_, err := LookupLocation(context.Background(), provider, "nowhere")
	if !errors.Is(err, ErrNoLocationCandidates) {
		t.Fatalf("err = %v, want ErrNoLocationCandidates", err)
	}
}

func TestLookupLocationEmptyQuery(t *testing.T) {
	if _, err := LookupLocation(context.Background(), &upstream.MockLocationProvider{}, "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestLookupProviderErrorsAreWrapped(t *testing.T) {
	boom := errors.New("upstream down")
	ctx := context.Background()

	if _, err := LookupLocation(ctx, &upstream.MockLocationProvider{Err: boom}, "x"); !errors.Is(err, boom) {
		t.Errorf("LookupLocation err = %v, want wrapped %v", err, boom)
	}
	if _, err := LookupWeather(ctx, &upstream.MockWeatherProvider{Err: boom}, "1", "2", time.UTC); !errors.Is(err, boom) {
		t.Errorf("LookupWeather err = %v, want wrapped %v", err, boom)
	}
	if _, err := LookupReviews(ctx, &upstream.MockReviewProvider{Err: boom}, "1", "2"); !errors.Is(err, boom) {
		t.Errorf("LookupReviews err = %v, want wrapped %v", err, boom)
	}
}

func TestLookupWeather(t *testing.T) {
	provider := &upstream.MockWeatherProvider{Payload: forecastPayload(make([]string, 10)...)}

	got, err := LookupWeather(context.Background(), provider, "45.52", "-122.67", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Time != "Mon Mar 01 2021" || got[6].Time != "Sun Mar 07 2021" {
		t.Fatalf("dates = %q .. %q", got[0].Time, got[6].Time)
	}
}

func TestLookupReviews(t *testing.T) {
	provider := &upstream.MockReviewProvider{Businesses: []domain.Business{
		{Name: "Powell's City of Books", Rating: 5, Price: strPtr("$$")},
		{Name: "Voodoo Doughnut", Rating: 3.5},
	}}

	got, err := LookupReviews(context.Background(), provider, "45.52", "-122.67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Powell's City of Books" || got[1].Price != nil {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

package handlers

import (
	"city-explorer-service/internal/adapters/upstream"
	"city-explorer-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExploreHandlerWeather(t *testing.T) {
	h := &ExploreHandler{
		Forecasts: &upstream.MockWeatherProvider{Payload: domain.ForecastPayload{Data: []domain.DailyForecast{
			{Weather: &domain.WeatherCondition{Description: "Light snow"}, Ts: 1614567660},
		}}},
		Zone: time.FixedZone("EST", -5*60*60),
	}

	rec := httptest.NewRecorder()
	h.Weather(rec, httptest.NewRequest(http.MethodGet, "/weather?latitude=1&longitude=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var got []map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["time"] != "Sun Feb 28 2021" {
		t.Fatalf("body = %v", got)
	}
}

func TestExploreHandlerReviews(t *testing.T) {
	h := &ExploreHandler{
		Businesses: &upstream.MockReviewProvider{Businesses: []domain.Business{
			{Name: "Tartine Bakery & Cafe", Rating: 4},
		}},
	}

	rec := httptest.NewRecorder()
	h.Reviews(rec, httptest.NewRequest(http.MethodGet, "/reviews?latitude=1&longitude=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var got []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Tartine Bakery & Cafe" {
		t.Fatalf("body = %v", got)
	}
}

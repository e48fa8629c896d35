package handlers

import (
	"city-explorer-service/internal/api/dto"
	"city-explorer-service/internal/ports"
	"city-explorer-service/internal/services"
	"log"
	"net/http"
	"time"
)

// ExploreHandler serves the reshaped upstream lookups (location, weather, reviews).
// Any failure after parameter checks is reported as 500 with the error message.
// Zone renders forecast dates; nil means the process-local zone.
type ExploreHandler struct {
	Locations  ports.LocationProvider
	Forecasts  ports.WeatherProvider
	Businesses ports.ReviewProvider
	Zone       *time.Location
}

func (h *ExploreHandler) zone() *time.Location {
	if h.Zone == nil {
		return time.Local
	}
	return h.Zone
}

func (h *ExploreHandler) Location(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	params, ok := requireQuery(w, r, "search")
	if !ok {
		return
	}

	loc, err := services.LookupLocation(r.Context(), h.Locations, params[0])
	if err != nil {
		log.Printf("lookup location failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LocationResponse{
		FormattedQuery: loc.Query,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
	})
}

func (h *ExploreHandler) Weather(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	params, ok := requireQuery(w, r, "latitude", "longitude")
	if !ok {
		return
	}

	days, err := services.LookupWeather(r.Context(), h.Forecasts, params[0], params[1], h.zone())
	if err != nil {
		log.Printf("lookup weather failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	res := make([]dto.ForecastResponse, 0, len(days))
	for _, d := range days {
		res = append(res, dto.ForecastResponse{Forecast: d.Description, Time: d.Time})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ExploreHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	params, ok := requireQuery(w, r, "latitude", "longitude")
	if !ok {
		return
	}

	listings, err := services.LookupReviews(r.Context(), h.Businesses, params[0], params[1])
	if err != nil {
		log.Printf("lookup reviews failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	res := make([]dto.ReviewResponse, 0, len(listings))
	for _, l := range listings {
		res = append(res, dto.ReviewResponse{
			Name:     l.Name,
			ImageURL: l.ImageURL,
			Price:    l.Price,
			Rating:   l.Rating,
			URL:      l.URL,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package api

import (
	"city-explorer-service/internal/api/handlers"
	"city-explorer-service/internal/ports"
	"net/http"
	"time"
)

// Dependencies are the ports the HTTP layer needs. Users may be nil when no database is configured.
// Zone is used for forecast dates; nil means time.Local.
type Dependencies struct {
	Locations ports.LocationProvider
	Weather   ports.WeatherProvider
	Reviews   ports.ReviewProvider
	Users     ports.UserRepository
	Zone      *time.Location
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	explore := &handlers.ExploreHandler{
		Locations:  deps.Locations,
		Forecasts:  deps.Weather,
		Businesses: deps.Reviews,
		Zone:       deps.Zone,
	}
	auth := &handlers.AuthHandler{Users: deps.Users}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/location", explore.Location)
	mux.HandleFunc("/weather", explore.Weather)
	mux.HandleFunc("/reviews", explore.Reviews)
	mux.HandleFunc("/auth/signup", auth.Signup)

	return loggingMiddleware(corsMiddleware(mux))
}

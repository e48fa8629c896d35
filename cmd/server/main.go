package main

import (
	"city-explorer-service/internal/adapters/repositories"
	"city-explorer-service/internal/adapters/upstream"
	"city-explorer-service/internal/api"
	"city-explorer-service/internal/config"
	"city-explorer-service/internal/platform/db"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires the upstream adapters (LocationIQ, Weatherbit, Yelp) and Postgres behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	locations, err := upstream.NewLocationIQProvider(cfg.GeocodeBaseURL, cfg.GeocodeAPIKey, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal(err)
	}
	weather, err := upstream.NewWeatherbitProvider(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal(err)
	}
	reviews, err := upstream.NewYelpProvider(cfg.YelpBaseURL, cfg.YelpAPIKey, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal(err)
	}

	deps := api.Dependencies{
		Locations: locations,
		Weather:   weather,
		Reviews:   reviews,
	}

	// Signup is the only feature backed by the database; run without it when DATABASE_URL is unset.
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		deps.Users = repositories.NewPostgresUserRepository(conn)
	} else {
		log.Println("DATABASE_URL not set; /auth/signup disabled")
	}

	router := api.NewRouter(deps)

	// WriteTimeout leaves room for the upstream timeout.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

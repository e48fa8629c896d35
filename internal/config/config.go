package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and passed explicitly to the adapters.
type Config struct {
	Port            string
	DatabaseURL     string
	GeocodeAPIKey   string
	WeatherAPIKey   string
	YelpAPIKey      string
	GeocodeBaseURL  string
	WeatherBaseURL  string
	YelpBaseURL     string
	UpstreamTimeout time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	timeout, err := time.ParseDuration(Get("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: parse UPSTREAM_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, errors.New("load config: UPSTREAM_TIMEOUT must be positive")
	}

	return Config{
		Port:            Get("PORT", "8080"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GeocodeAPIKey:   strings.TrimSpace(os.Getenv("GEOCODE_API_KEY")),
		WeatherAPIKey:   strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		YelpAPIKey:      strings.TrimSpace(os.Getenv("YELP_API_KEY")),
		GeocodeBaseURL:  Get("GEOCODE_BASE_URL", "https://us1.locationiq.com"),
		WeatherBaseURL:  Get("WEATHER_BASE_URL", "https://api.weatherbit.io"),
		YelpBaseURL:     Get("YELP_BASE_URL", "https://api.yelp.com"),
		UpstreamTimeout: timeout,
	}, nil
}

// Validate reports the first missing API key.
func (c Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"GEOCODE_API_KEY", c.GeocodeAPIKey},
		{"WEATHER_API_KEY", c.WeatherAPIKey},
		{"YELP_API_KEY", c.YelpAPIKey},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	return nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package domain

// One match returned by the geocoding provider.
// Field names mirror the LocationIQ search payload; coordinates stay strings.
type LocationCandidate struct {
	DisplayName string `json:"display_name" validate:"required"`
	Lat         string `json:"lat" validate:"required"`
	Lon         string `json:"lon" validate:"required"`
}

// Best match for a search query, reduced to what the client renders.
type Location struct {
	Query     string
	Latitude  string
	Longitude string
}

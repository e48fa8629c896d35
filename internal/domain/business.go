package domain

// Business search payload as returned by Yelp.
type BusinessSearchPayload struct {
	Businesses []Business `json:"businesses" validate:"dive"`
}

// A single business from the search results.
// Price is nil when the provider omits the price tier.
type Business struct {
	Name     string  `json:"name" validate:"required"`
	ImageURL string  `json:"image_url"`
	Price    *string `json:"price"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	URL      string  `json:"url"`
}

// Compact listing card for a business.
type Listing struct {
	Name     string
	ImageURL string
	Price    *string
	Rating   float64
	URL      string
}

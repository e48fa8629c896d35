package dto

// Price is omitted from the JSON when the business has no price tier.
type ReviewResponse struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    *string `json:"price,omitempty"`
	Rating   float64 `json:"rating"`
	URL      string  `json:"url"`
}

package dto

type LocationResponse struct {
	FormattedQuery string `json:"formatted_query"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

package dto

type ForecastResponse struct {
	Forecast string `json:"forecast"`
	Time     string `json:"time"`
}

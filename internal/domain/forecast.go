package domain

// Daily forecast payload as returned by Weatherbit.
type ForecastPayload struct {
	Data []DailyForecast `json:"data" validate:"dive"`
}

// A single forecast day. Ts is the Unix time (seconds) of the day.
type DailyForecast struct {
	Weather *WeatherCondition `json:"weather" validate:"required"`
	Ts      int64             `json:"ts"`
}

type WeatherCondition struct {
	Description string `json:"description"`
}

// Display-ready forecast for one day.
type Forecast struct {
	Description string
	Time        string
}

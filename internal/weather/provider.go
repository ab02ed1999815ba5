package weather

import (
	"context"
	"time"
)

// Observation is a single provider reading before normalization. Optional
// fields are pointers so a missing value is distinguishable from zero; the
// pipeline applies the documented defaults for absent forecast fields.
type Observation struct {
	Date time.Time

	TemperatureC float64
	FeelsLikeC   *float64
	HumidityPct  *float64
	WindSpeedMS  *float64
	PressureHPa  *float64

	// Code is an OpenWeatherMap-style condition id; providers using other
	// schemes translate before returning. Description is the provider's (or
	// translated) human text.
	Code        *int
	Description string
}

// Provider abstracts a weather data source (Open-Meteo, OpenWeatherMap,
// WeatherAPI). Both calls are single-attempt: no retries, no shared state,
// safe to invoke concurrently.
type Provider interface {
	Name() string
	CurrentConditions(ctx context.Context, coords Coordinates) (Observation, error)
	Forecast(ctx context.Context, coords Coordinates, days int) ([]Observation, error)
}

// Geocoder resolves a free-text place name to coordinates. Implementations
// fold every failure mode into a single not-found error.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (Coordinates, error)
}

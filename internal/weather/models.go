package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition category.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionDrizzle      Condition = "drizzle"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionAtmosphere   Condition = "atmosphere"
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
)

// Coordinates is a resolved place: latitude/longitude plus the canonical
// display name returned by the geocoder. Produced once per search and never
// mutated afterwards.
type Coordinates struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"name"`
}

// Report is the canonical normalized weather record. Temperatures are always
// Celsius here; conversion to the display unit happens at the presentation
// boundary only.
type Report struct {
	LocationName string    `json:"location"`
	Date         time.Time `json:"date"` // UTC; midnight for forecast days
	TemperatureC float64   `json:"temperatureC"`
	FeelsLikeC   float64   `json:"feelsLikeC"`
	HumidityPct  float64   `json:"humidityPercent"`
	WindSpeedMS  float64   `json:"windSpeedMs"`
	PressureHPa  float64   `json:"pressureHpa"`
	Condition    Condition `json:"condition"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Emoji        string    `json:"emoji"`
}

// Forecast is an ordered multi-day series, at most one Report per calendar
// date, ascending by Date.
type Forecast []Report

// Status is the outcome of a single search request.
type Status string

const (
	// StatusFound means at least one of the two weather calls succeeded.
	StatusFound Status = "found"
	// StatusNotFound means the place name did not resolve (including blank
	// input). A normal outcome, not a fault.
	StatusNotFound Status = "not_found"
	// StatusUnavailable means the place resolved but both weather calls
	// failed or returned an unexpected shape.
	StatusUnavailable Status = "unavailable"
)

// SearchResult is the discriminated result handed to the UI boundary.
// Current and Forecast are failure-independent: either may be absent while
// the other is populated.
type SearchResult struct {
	Status   Status      `json:"status"`
	Location Coordinates `json:"location,omitempty"`
	Current  *Report     `json:"current,omitempty"`
	Forecast Forecast    `json:"forecast,omitempty"`
}

package weather

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// Default forecast horizon in days.
const DefaultForecastDays = 7

// Defaults applied when a provider omits optional forecast fields. Carried
// over from the original dashboard; placeholder values, not meteorology.
const (
	defaultHumidityPct = 50
	defaultWindMS      = 0
)

// Service is the fetch/transform pipeline: geocode a city, fetch current
// conditions and a multi-day forecast, and normalize both into Reports.
// It holds no mutable state; every search is independent.
type Service struct {
	geocoder Geocoder
	provider Provider
	days     int
}

// NewService creates a Service. days is clamped into [1, DefaultForecastDays].
func NewService(geocoder Geocoder, provider Provider, days int) *Service {
	if days <= 0 || days > DefaultForecastDays {
		days = DefaultForecastDays
	}
	return &Service{
		geocoder: geocoder,
		provider: provider,
		days:     days,
	}
}

// Search resolves a city name and fetches current conditions plus the
// forecast. The two weather calls run concurrently and are
// failure-independent: if one fails the other still populates the result.
// A blank city or a geocoder miss yields StatusNotFound; both weather calls
// failing yields StatusUnavailable. Errors never escape this boundary.
func (s *Service) Search(ctx context.Context, city string) SearchResult {
	if strings.TrimSpace(city) == "" {
		return SearchResult{Status: StatusNotFound}
	}

	coords, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		log.Printf("geocode miss for %q: %v", city, err)
		return SearchResult{Status: StatusNotFound}
	}

	var (
		wg       sync.WaitGroup
		current  *Report
		forecast Forecast
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current = s.fetchCurrent(ctx, coords)
	}()
	go func() {
		defer wg.Done()
		forecast = s.fetchForecast(ctx, coords)
	}()
	wg.Wait()

	if current == nil && len(forecast) == 0 {
		return SearchResult{Status: StatusUnavailable, Location: coords}
	}

	return SearchResult{
		Status:   StatusFound,
		Location: coords,
		Current:  current,
		Forecast: forecast,
	}
}

// fetchCurrent returns nil when the provider call fails; the failure is
// logged and folded into the unavailable half of the result.
func (s *Service) fetchCurrent(ctx context.Context, coords Coordinates) *Report {
	obs, err := s.provider.CurrentConditions(ctx, coords)
	if err != nil {
		log.Printf("provider %s current conditions failed for %s: %v", s.provider.Name(), coords.DisplayName, err)
		return nil
	}
	r := s.normalize(coords, obs)
	return &r
}

// fetchForecast returns an empty series when the provider call fails.
// Sub-daily readings are bucketed to one per calendar date (first wins) and
// the series is truncated to the configured horizon.
func (s *Service) fetchForecast(ctx context.Context, coords Coordinates) Forecast {
	observations, err := s.provider.Forecast(ctx, coords, s.days)
	if err != nil {
		log.Printf("provider %s forecast failed for %s: %v", s.provider.Name(), coords.DisplayName, err)
		return nil
	}

	seen := make(map[string]bool, s.days)
	forecast := make(Forecast, 0, s.days)
	for _, obs := range observations {
		key := obs.Date.UTC().Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true

		r := s.normalize(coords, obs)
		r.Date = midnightUTC(obs.Date)
		forecast = append(forecast, r)

		if len(forecast) >= s.days {
			break
		}
	}
	return forecast
}

// normalize turns a provider observation into the canonical Report, filling
// documented defaults for absent fields and deriving feels-like when the
// provider did not supply it.
func (s *Service) normalize(coords Coordinates, obs Observation) Report {
	humidity := float64(defaultHumidityPct)
	if obs.HumidityPct != nil {
		humidity = *obs.HumidityPct
	}
	wind := float64(defaultWindMS)
	if obs.WindSpeedMS != nil {
		wind = *obs.WindSpeedMS
	}
	var pressure float64
	if obs.PressureHPa != nil {
		pressure = *obs.PressureHPa
	}

	feelsLike := FeelsLike(obs.TemperatureC, humidity, wind)
	if obs.FeelsLikeC != nil {
		feelsLike = *obs.FeelsLikeC
	}

	cond := ClassifyCode(obs.Code)
	desc := obs.Description
	if desc == "" {
		desc = string(cond)
	}

	return Report{
		LocationName: coords.DisplayName,
		Date:         obs.Date.UTC(),
		TemperatureC: obs.TemperatureC,
		FeelsLikeC:   feelsLike,
		HumidityPct:  humidity,
		WindSpeedMS:  wind,
		PressureHPa:  pressure,
		Condition:    cond,
		Description:  desc,
		Icon:         ConditionIcon(cond),
		Emoji:        ConditionEmoji(cond),
	}
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

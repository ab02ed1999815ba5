package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported weather provider names.
const (
	ProviderOpenMeteo   = "openmeteo"
	ProviderOpenWeather = "openweathermap"
	ProviderWeatherAPI  = "weatherapi"
)

type AppConfig struct {
	// Provider selects the active weather source. Open-Meteo is the
	// default and needs no key; the others are key-gated.
	Provider          string
	OpenWeatherAPIKey string
	WeatherAPIKey     string

	// ForecastDays is the forecast horizon, 1-7.
	ForecastDays int

	// HTTPTimeout bounds each outbound provider call (single attempt).
	HTTPTimeout time.Duration

	// Session store retention and sweep cadence.
	SessionMaxAge        time.Duration
	SessionSweepInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Provider = getenvDefault("WEATHER_PROVIDER", ProviderOpenMeteo)
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")

	switch cfg.Provider {
	case ProviderOpenMeteo:
		// keyless
	case ProviderOpenWeather:
		if cfg.OpenWeatherAPIKey == "" {
			return nil, fmt.Errorf("WEATHER_PROVIDER=%s requires OPENWEATHER_API_KEY", cfg.Provider)
		}
	case ProviderWeatherAPI:
		if cfg.WeatherAPIKey == "" {
			return nil, fmt.Errorf("WEATHER_PROVIDER=%s requires WEATHERAPI_API_KEY", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown WEATHER_PROVIDER: %q", cfg.Provider)
	}

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 7 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 7")
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	maxAgeStr := getenvDefault("SESSION_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}
	cfg.SessionMaxAge = maxAge

	sweepStr := getenvDefault("SESSION_SWEEP_INTERVAL", "15m")
	sweep, err := time.ParseDuration(sweepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}
	cfg.SessionSweepInterval = sweep

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface for
// OpenWeatherMap. Requires an API key. The forecast endpoint returns
// 3-hourly entries; the pipeline buckets those down to one per day.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	client      *http.Client
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		client:      client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) query(coords weather.Coordinates) url.Values {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	values.Set("lat", fmt.Sprintf("%f", coords.Latitude))
	values.Set("lon", fmt.Sprintf("%f", coords.Longitude))
	return values
}

func (p *OpenWeatherProvider) CurrentConditions(ctx context.Context, coords weather.Coordinates) (weather.Observation, error) {
	if p.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.currentURL, p.query(coords).Encode()))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Dt   int64 `json:"dt"`
		Main *struct {
			Temp      *float64 `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
			Humidity  *float64 `json:"humidity"`
			Pressure  *float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			ID          *int   `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}

	if payload.Main == nil || payload.Main.Temp == nil {
		return weather.Observation{}, fmt.Errorf("openweather response missing main section")
	}

	obs := weather.Observation{
		Date:         time.Unix(payload.Dt, 0).UTC(),
		TemperatureC: *payload.Main.Temp,
		FeelsLikeC:   payload.Main.FeelsLike,
		HumidityPct:  payload.Main.Humidity,
		WindSpeedMS:  payload.Wind.Speed,
		PressureHPa:  payload.Main.Pressure,
	}
	if len(payload.Weather) > 0 {
		obs.Code = payload.Weather[0].ID
		obs.Description = payload.Weather[0].Description
	}
	return obs, nil
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, coords weather.Coordinates, days int) ([]weather.Observation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.forecastURL, p.query(coords).Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			DtTxt string `json:"dt_txt"`
			Main  struct {
				Temp      *float64 `json:"temp"`
				FeelsLike *float64 `json:"feels_like"`
				Humidity  *float64 `json:"humidity"`
				Pressure  *float64 `json:"pressure"`
			} `json:"main"`
			Wind struct {
				Speed *float64 `json:"speed"`
			} `json:"wind"`
			Weather []struct {
				ID          *int   `json:"id"`
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if len(payload.List) == 0 {
		return nil, fmt.Errorf("openweather forecast response has no entries")
	}

	observations := make([]weather.Observation, 0, len(payload.List))
	for _, item := range payload.List {
		if item.Main.Temp == nil {
			continue
		}
		ts, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			continue
		}

		obs := weather.Observation{
			Date:         ts.UTC(),
			TemperatureC: *item.Main.Temp,
			FeelsLikeC:   item.Main.FeelsLike,
			HumidityPct:  item.Main.Humidity,
			WindSpeedMS:  item.Wind.Speed,
			PressureHPa:  item.Main.Pressure,
		}
		if len(item.Weather) > 0 {
			obs.Code = item.Weather[0].ID
			obs.Description = item.Weather[0].Description
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

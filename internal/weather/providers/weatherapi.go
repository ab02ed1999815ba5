package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mnallaretnam/weather-dashboard/internal/common"
	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

// WeatherAPIProvider implements the weather.Provider interface for
// WeatherAPI.com. Requires an API key. WeatherAPI describes conditions as
// free text, which is keyword-matched to a representative condition id.
type WeatherAPIProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	client      *http.Client
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:        "weatherapi",
		apiKey:      apiKey,
		currentURL:  "https://api.weatherapi.com/v1/current.json",
		forecastURL: "https://api.weatherapi.com/v1/forecast.json",
		client:      client,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) CurrentConditions(ctx context.Context, coords weather.Coordinates) (weather.Observation, error) {
	if p.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", fmt.Sprintf("%f,%f", coords.Latitude, coords.Longitude))

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.currentURL, values.Encode()))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current *struct {
			LastUpdatedEpoch int64    `json:"last_updated_epoch"`
			TempC            *float64 `json:"temp_c"`
			FeelsLikeC       *float64 `json:"feelslike_c"`
			Humidity         *float64 `json:"humidity"`
			WindKph          *float64 `json:"wind_kph"`
			PressureMb       *float64 `json:"pressure_mb"`
			Condition        struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}

	cur := payload.Current
	if cur == nil || cur.TempC == nil {
		return weather.Observation{}, fmt.Errorf("weatherapi response missing current section")
	}

	obs := weather.Observation{
		Date:         time.Unix(cur.LastUpdatedEpoch, 0).UTC(),
		TemperatureC: *cur.TempC,
		FeelsLikeC:   cur.FeelsLikeC,
		HumidityPct:  cur.Humidity,
		PressureHPa:  cur.PressureMb,
		Code:         mapWeatherAPICondition(cur.Condition.Text),
		Description:  cur.Condition.Text,
	}
	if cur.WindKph != nil {
		ms := *cur.WindKph / 3.6
		obs.WindSpeedMS = &ms
	}
	return obs, nil
}

func (p *WeatherAPIProvider) Forecast(ctx context.Context, coords weather.Coordinates, days int) ([]weather.Observation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", fmt.Sprintf("%f,%f", coords.Latitude, coords.Longitude))
	values.Set("days", fmt.Sprintf("%d", days))

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.forecastURL, values.Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Forecast *struct {
			ForecastDay []struct {
				Date string `json:"date"`
				Day  struct {
					MaxTempC    *float64 `json:"maxtemp_c"`
					MinTempC    *float64 `json:"mintemp_c"`
					AvgHumidity *float64 `json:"avghumidity"`
					MaxWindKph  *float64 `json:"maxwind_kph"`
					Condition   struct {
						Text string `json:"text"`
					} `json:"condition"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Forecast == nil || len(payload.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("weatherapi response missing forecast section")
	}

	observations := make([]weather.Observation, 0, len(payload.Forecast.ForecastDay))
	for _, fd := range payload.Forecast.ForecastDay {
		if fd.Day.MaxTempC == nil || fd.Day.MinTempC == nil {
			continue
		}
		ts, err := time.Parse("2006-01-02", fd.Date)
		if err != nil {
			continue
		}

		obs := weather.Observation{
			Date:         ts.UTC(),
			TemperatureC: (*fd.Day.MaxTempC + *fd.Day.MinTempC) / 2,
			HumidityPct:  fd.Day.AvgHumidity,
			Code:         mapWeatherAPICondition(fd.Day.Condition.Text),
			Description:  fd.Day.Condition.Text,
		}
		if fd.Day.MaxWindKph != nil {
			ms := *fd.Day.MaxWindKph / 3.6
			obs.WindSpeedMS = &ms
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

// mapWeatherAPICondition picks a representative OpenWeatherMap-style id for
// a WeatherAPI condition text, so the shared classifier applies. Unmatched
// text yields nil (classified as unknown).
func mapWeatherAPICondition(text string) *int {
	var id int
	switch {
	case text == "":
		return nil
	case common.HasAny(text, "thunder", "storm"):
		id = 211
	case common.HasAny(text, "drizzle"):
		id = 301
	case common.HasAny(text, "snow", "sleet", "blizzard"):
		id = 601
	case common.HasAny(text, "rain", "shower"):
		id = 501
	case common.HasAny(text, "fog", "mist", "haze"):
		id = 741
	case common.HasAny(text, "cloud", "overcast"):
		id = 802
	case common.HasAny(text, "sunny", "clear"):
		id = 800
	default:
		return nil
	}
	return &id
}

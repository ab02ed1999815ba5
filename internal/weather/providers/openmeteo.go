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

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// It needs no API key. Open-Meteo reports WMO weather codes, which are
// translated to OpenWeatherMap-style ids during decoding.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  client,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) CurrentConditions(ctx context.Context, coords weather.Coordinates) (weather.Observation, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,surface_pressure,wind_speed_10m")
	values.Set("wind_speed_unit", "ms")
	values.Set("timezone", "auto")

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	// Pointer fields so a response missing the current section or a
	// required field is detectable rather than silently zero.
	var payload struct {
		Current *struct {
			Time             string   `json:"time"`
			Temperature      *float64 `json:"temperature_2m"`
			RelativeHumidity *float64 `json:"relative_humidity_2m"`
			ApparentTemp     *float64 `json:"apparent_temperature"`
			WeatherCode      *int     `json:"weather_code"`
			SurfacePressure  *float64 `json:"surface_pressure"`
			WindSpeed        *float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}

	cur := payload.Current
	if cur == nil {
		return weather.Observation{}, fmt.Errorf("openmeteo response missing current section")
	}
	if cur.Temperature == nil || cur.WeatherCode == nil {
		return weather.Observation{}, fmt.Errorf("openmeteo current response missing required fields")
	}

	ts, err := time.Parse("2006-01-02T15:04", cur.Time)
	if err != nil {
		ts = time.Now().UTC()
	}

	code, desc := weather.MapWMOCode(*cur.WeatherCode)

	return weather.Observation{
		Date:         ts.UTC(),
		TemperatureC: *cur.Temperature,
		FeelsLikeC:   cur.ApparentTemp,
		HumidityPct:  cur.RelativeHumidity,
		WindSpeedMS:  cur.WindSpeed,
		PressureHPa:  cur.SurfacePressure,
		Code:         code,
		Description:  desc,
	}, nil
}

func (p *OpenMeteoProvider) Forecast(ctx context.Context, coords weather.Coordinates, days int) ([]weather.Observation, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max,relative_humidity_2m_max")
	values.Set("forecast_days", fmt.Sprintf("%d", days))
	values.Set("wind_speed_unit", "ms")
	values.Set("timezone", "auto")

	resp, err := doGet(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Daily fields are parallel equal-length arrays indexed by day.
	var payload struct {
		Daily *struct {
			Time        []string  `json:"time"`
			WeatherCode []int     `json:"weather_code"`
			TempMax     []float64 `json:"temperature_2m_max"`
			TempMin     []float64 `json:"temperature_2m_min"`
			WindMax     []float64 `json:"wind_speed_10m_max"`
			HumidityMax []float64 `json:"relative_humidity_2m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	daily := payload.Daily
	if daily == nil {
		return nil, fmt.Errorf("openmeteo response missing daily section")
	}
	if len(daily.TempMax) != len(daily.Time) || len(daily.TempMin) != len(daily.Time) {
		return nil, fmt.Errorf("openmeteo daily arrays are not parallel")
	}

	observations := make([]weather.Observation, 0, len(daily.Time))
	for i, day := range daily.Time {
		ts, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}

		// One bucket per calendar day: the day's temperature is the mean
		// of max and min, a deliberate simplification.
		obs := weather.Observation{
			Date:         ts.UTC(),
			TemperatureC: (daily.TempMax[i] + daily.TempMin[i]) / 2,
		}

		if i < len(daily.WeatherCode) {
			code, desc := weather.MapWMOCode(daily.WeatherCode[i])
			obs.Code = code
			obs.Description = desc
		}
		if i < len(daily.WindMax) {
			wind := daily.WindMax[i]
			obs.WindSpeedMS = &wind
		}
		if i < len(daily.HumidityMax) {
			humidity := daily.HumidityMax[i]
			obs.HumidityPct = &humidity
		}

		observations = append(observations, obs)
	}

	return observations, nil
}

package providers

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

func TestOpenWeatherCurrentConditions(t *testing.T) {
	client := setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, `=~^https://api\.openweathermap\.org/data/2\.5/weather`,
		httpmock.NewStringResponder(http.StatusOK, `{
			"dt": 1787000000,
			"main": {"temp": 14.55, "feels_like": 13.88, "humidity": 72, "pressure": 1014},
			"wind": {"speed": 4.12},
			"weather": [{"id": 803, "description": "broken clouds"}]
		}`))

	p := NewOpenWeatherProvider(client, "test-key")
	obs, err := p.CurrentConditions(context.Background(), testCoords())
	require.NoError(t, err)

	assert.InDelta(t, 14.55, obs.TemperatureC, 0.001)
	require.NotNil(t, obs.FeelsLikeC)
	assert.InDelta(t, 13.88, *obs.FeelsLikeC, 0.001)
	require.NotNil(t, obs.Code)
	assert.Equal(t, 803, *obs.Code)
	assert.Equal(t, "broken clouds", obs.Description)
	assert.Equal(t, weather.ConditionClouds, weather.ClassifyCode(obs.Code))
}

func TestOpenWeatherCurrentMissingMainSection(t *testing.T) {
	client := setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, `=~^https://api\.openweathermap\.org/data/2\.5/weather`,
		httpmock.NewStringResponder(http.StatusOK, `{"cod": 200}`))

	p := NewOpenWeatherProvider(client, "test-key")
	_, err := p.CurrentConditions(context.Background(), testCoords())
	assert.Error(t, err)
}

func TestOpenWeatherMissingKey(t *testing.T) {
	p := NewOpenWeatherProvider(&http.Client{}, "")

	_, err := p.CurrentConditions(context.Background(), testCoords())
	assert.Error(t, err)
	_, err = p.Forecast(context.Background(), testCoords(), 7)
	assert.Error(t, err)
}

// The forecast endpoint returns 3-hourly entries; the provider surfaces them
// as-is and the pipeline buckets them per day.
func TestOpenWeatherForecastSubDailyEntries(t *testing.T) {
	client := setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, `=~^https://api\.openweathermap\.org/data/2\.5/forecast`,
		httpmock.NewStringResponder(http.StatusOK, `{
			"list": [
				{
					"dt_txt": "2026-09-01 00:00:00",
					"main": {"temp": 16.1, "feels_like": 15.4, "humidity": 70},
					"wind": {"speed": 2.5},
					"weather": [{"id": 500, "description": "light rain"}]
				},
				{
					"dt_txt": "2026-09-01 03:00:00",
					"main": {"temp": 15.2, "feels_like": 14.6, "humidity": 74},
					"wind": {"speed": 2.1},
					"weather": [{"id": 500, "description": "light rain"}]
				},
				{
					"dt_txt": "2026-09-02 00:00:00",
					"main": {"temp": 17.9, "feels_like": 17.1, "humidity": 66},
					"wind": {"speed": 3.0},
					"weather": [{"id": 800, "description": "clear sky"}]
				}
			]
		}`))

	p := NewOpenWeatherProvider(client, "test-key")
	observations, err := p.Forecast(context.Background(), testCoords(), 7)
	require.NoError(t, err)
	require.Len(t, observations, 3)

	assert.Equal(t, "2026-09-01", observations[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-09-01", observations[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-09-02", observations[2].Date.Format("2006-01-02"))
	assert.InDelta(t, 16.1, observations[0].TemperatureC, 0.001)
}

func TestOpenWeatherForecastEmptyList(t *testing.T) {
	client := setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, `=~^https://api\.openweathermap\.org/data/2\.5/forecast`,
		httpmock.NewStringResponder(http.StatusOK, `{"list": []}`))

	p := NewOpenWeatherProvider(client, "test-key")
	_, err := p.Forecast(context.Background(), testCoords(), 7)
	assert.Error(t, err)
}

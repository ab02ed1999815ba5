package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnallaretnam/weather-dashboard/internal/session"
	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

func foundResult() weather.SearchResult {
	day := func(s string) time.Time {
		ts, _ := time.Parse("2006-01-02", s)
		return ts.UTC()
	}
	current := weather.Report{
		LocationName: "London",
		Date:         day("2026-09-01"),
		TemperatureC: 20.0,
		FeelsLikeC:   19.1,
		HumidityPct:  65,
		WindSpeedMS:  5.2,
		PressureHPa:  1013,
		Condition:    weather.ConditionClear,
		Description:  "clear sky",
		Icon:         "WeatherSunny",
		Emoji:        "☀️",
	}
	return weather.SearchResult{
		Status:   weather.StatusFound,
		Location: weather.Coordinates{Latitude: 51.5, Longitude: -0.12, DisplayName: "London"},
		Current:  &current,
		Forecast: weather.Forecast{
			{LocationName: "London", Date: day("2026-09-01"), TemperatureC: 19, FeelsLikeC: 18, Condition: weather.ConditionClear, Description: "clear sky", Emoji: "☀️"},
			{LocationName: "London", Date: day("2026-09-02"), TemperatureC: 16, FeelsLikeC: 14.5, WindSpeedMS: 3, Condition: weather.ConditionRain, Description: "slight rain", Emoji: "🌧️"},
		},
	}
}

func TestRenderFoundCelsius(t *testing.T) {
	st := session.SetCity(session.NewState(), "London")
	page := Render(st, foundResult())

	assert.Equal(t, session.ThemeDark, page.Theme)
	assert.Equal(t, "London", page.City)
	assert.Nil(t, page.Error)
	assert.Empty(t, page.Notices)

	require.NotNil(t, page.Weather)
	assert.Equal(t, "☀️ Weather in London", page.Weather.Title)
	assert.Equal(t, "20.0°C", page.Weather.Temperature)
	assert.Equal(t, "19.1°C", page.Weather.FeelsLike)
	assert.Equal(t, "65%", page.Weather.Humidity)
	assert.Equal(t, "18.7 km/h", page.Weather.Wind)
	assert.Equal(t, "1013 hPa", page.Weather.Pressure)
	assert.Equal(t, "Clear Sky", page.Weather.Description)

	require.NotNil(t, page.Forecast)
	require.Len(t, page.Forecast.Rows, 2)
	assert.Equal(t, "2026-09-01", page.Forecast.Rows[0].Date)
	assert.Equal(t, "19.0°C", page.Forecast.Rows[0].Temperature)
	assert.Equal(t, "Calm", page.Forecast.Rows[0].Wind)
	assert.Equal(t, "🌧️ Slight Rain", page.Forecast.Rows[1].Description)

	require.NotNil(t, page.Chart)
	require.Len(t, page.Chart.Points, 2)
	assert.Equal(t, 1, page.Chart.Points[0].Day)
	assert.InDelta(t, 19.0, page.Chart.Points[0].Temperature, 0.001)
	assert.Len(t, page.Chart.Bars, 2)
}

func TestRenderFoundFahrenheit(t *testing.T) {
	st := session.SetUnit(session.NewState(), true)
	page := Render(st, foundResult())

	require.NotNil(t, page.Weather)
	assert.Equal(t, "68.0°F", page.Weather.Temperature)
	assert.Equal(t, "11.6 mph", page.Weather.Wind)
	require.NotNil(t, page.Chart)
	assert.Contains(t, page.Chart.Title, "°F")
	assert.InDelta(t, 66.2, page.Chart.Points[0].Temperature, 0.001)
}

// Toggling the unit twice yields the original displayed value.
func TestRenderUnitToggleIdempotence(t *testing.T) {
	st := session.NewState()
	before := Render(st, foundResult())
	after := Render(session.ToggleUnit(session.ToggleUnit(st)), foundResult())
	assert.Equal(t, before, after)
}

func TestRenderNotFound(t *testing.T) {
	page := Render(session.NewState(), weather.SearchResult{Status: weather.StatusNotFound})

	require.NotNil(t, page.Error)
	assert.Contains(t, page.Error.Title, "not found")
	assert.Nil(t, page.Weather)
	assert.Nil(t, page.Forecast)
	assert.Nil(t, page.Chart)
}

func TestRenderUnavailable(t *testing.T) {
	page := Render(session.NewState(), weather.SearchResult{Status: weather.StatusUnavailable})

	require.NotNil(t, page.Error)
	assert.Contains(t, page.Error.Title, "unavailable")
	assert.Nil(t, page.Weather)
}

// The two halves fail independently: a missing half becomes a notice, the
// surviving half still renders.
func TestRenderPartialFailures(t *testing.T) {
	res := foundResult()
	res.Forecast = nil
	page := Render(session.NewState(), res)
	assert.NotNil(t, page.Weather)
	assert.Nil(t, page.Forecast)
	assert.Nil(t, page.Chart)
	require.Len(t, page.Notices, 1)
	assert.Contains(t, page.Notices[0], "Forecast")

	res = foundResult()
	res.Current = nil
	page = Render(session.NewState(), res)
	assert.Nil(t, page.Weather)
	assert.NotNil(t, page.Forecast)
	require.Len(t, page.Notices, 1)
	assert.Contains(t, page.Notices[0], "Current conditions")
}

func TestEmptyPage(t *testing.T) {
	st := session.SetTheme(session.NewState(), true)
	page := Empty(st)
	assert.Equal(t, session.ThemeLight, page.Theme)
	assert.Nil(t, page.Weather)
	assert.Nil(t, page.Error)
	assert.Empty(t, page.City)
}

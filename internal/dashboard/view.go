// Package dashboard derives presentation-ready card view-models from
// normalized weather records and session state. All unit conversion happens
// here, at the display boundary; the records themselves stay in Celsius.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/mnallaretnam/weather-dashboard/internal/session"
	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

// Page is everything the host rendering framework needs to draw the
// dashboard for one session.
type Page struct {
	Theme    string        `json:"theme"`
	Unit     string        `json:"unit"`
	City     string        `json:"city,omitempty"`
	Weather  *WeatherCard  `json:"weather,omitempty"`
	Forecast *ForecastCard `json:"forecast,omitempty"`
	Chart    *ChartCard    `json:"chart,omitempty"`
	Error    *ErrorCard    `json:"error,omitempty"`
	Notices  []string      `json:"notices,omitempty"`
}

// WeatherCard is the current-conditions card.
type WeatherCard struct {
	Title       string  `json:"title"`
	Icon        string  `json:"icon"`
	Temperature string  `json:"temperature"`
	FeelsLike   string  `json:"feelsLike"`
	Humidity    string  `json:"humidity"`
	Wind        string  `json:"wind"`
	Pressure    string  `json:"pressure"`
	Description string  `json:"description"`
	Value       float64 `json:"value"` // displayed temperature, numeric
}

// ForecastCard is the multi-day table.
type ForecastCard struct {
	Title string        `json:"title"`
	Rows  []ForecastRow `json:"rows"`
}

type ForecastRow struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	Wind        string `json:"wind"`
	Description string `json:"description"`
}

// ChartCard is the temperature trend: numeric points for a plot plus a
// text-bar fallback rendering.
type ChartCard struct {
	Title  string       `json:"title"`
	Points []ChartPoint `json:"points"`
	Bars   []string     `json:"bars"`
}

type ChartPoint struct {
	Day         int     `json:"day"`
	Temperature float64 `json:"temperature"`
}

// ErrorCard carries the fixed "not found, try again" style message.
type ErrorCard struct {
	Title    string   `json:"title"`
	Messages []string `json:"messages"`
}

// Render builds the page for a search result under the given session state.
// A NotFound result yields an error card; both weather halves unavailable
// yields an unavailable card; a partial failure renders the surviving half
// and a notice for the other.
func Render(st session.State, res weather.SearchResult) Page {
	page := Page{
		Theme: st.Theme,
		Unit:  st.Unit,
		City:  st.LastCity,
	}

	switch res.Status {
	case weather.StatusNotFound:
		page.Error = notFoundCard()
		return page
	case weather.StatusUnavailable:
		page.Error = unavailableCard()
		return page
	}

	if res.Current != nil {
		page.Weather = weatherCard(st.Unit, *res.Current)
	} else {
		page.Notices = append(page.Notices, "Current conditions are unavailable right now.")
	}

	if len(res.Forecast) > 0 {
		page.Forecast = forecastCard(st.Unit, res.Forecast)
		page.Chart = chartCard(st.Unit, res.Forecast)
	} else {
		page.Notices = append(page.Notices, "Forecast is unavailable right now.")
	}

	return page
}

// Empty returns the page shown before any search, and after a clear.
func Empty(st session.State) Page {
	return Page{Theme: st.Theme, Unit: st.Unit}
}

func notFoundCard() *ErrorCard {
	return &ErrorCard{
		Title: "❌ City not found",
		Messages: []string{
			"Please try again with a different city name.",
			"Check the spelling of the city name.",
			"Try including the country (e.g., \"London, UK\").",
		},
	}
}

func unavailableCard() *ErrorCard {
	return &ErrorCard{
		Title: "⚠️ Weather unavailable",
		Messages: []string{
			"Weather data could not be fetched right now.",
			"Please try again in a moment.",
		},
	}
}

func weatherCard(unit string, r weather.Report) *WeatherCard {
	temp := weather.Convert(r.TemperatureC, unit)
	feels := weather.Convert(r.FeelsLikeC, unit)

	return &WeatherCard{
		Title:       fmt.Sprintf("%s Weather in %s", r.Emoji, r.LocationName),
		Icon:        r.Icon,
		Temperature: fmt.Sprintf("%.1f°%s", temp, unit),
		FeelsLike:   fmt.Sprintf("%.1f°%s", feels, unit),
		Humidity:    fmt.Sprintf("%.0f%%", r.HumidityPct),
		Wind:        weather.FormatWind(r.WindSpeedMS, unit),
		Pressure:    fmt.Sprintf("%.0f hPa", r.PressureHPa),
		Description: titleCase(r.Description),
		Value:       temp,
	}
}

func forecastCard(unit string, forecast weather.Forecast) *ForecastCard {
	rows := make([]ForecastRow, 0, len(forecast))
	for _, day := range forecast {
		rows = append(rows, ForecastRow{
			Date:        day.Date.Format("2006-01-02"),
			Temperature: fmt.Sprintf("%.1f°%s", weather.Convert(day.TemperatureC, unit), unit),
			FeelsLike:   fmt.Sprintf("%.1f°%s", weather.Convert(day.FeelsLikeC, unit), unit),
			Wind:        weather.FormatWind(day.WindSpeedMS, unit),
			Description: fmt.Sprintf("%s %s", day.Emoji, titleCase(day.Description)),
		})
	}
	return &ForecastCard{
		Title: "📅 7-Day Forecast",
		Rows:  rows,
	}
}

func chartCard(unit string, forecast weather.Forecast) *ChartCard {
	points := make([]ChartPoint, 0, len(forecast))
	min, max := 0.0, 0.0
	for i, day := range forecast {
		t := weather.Convert(day.TemperatureC, unit)
		if i == 0 || t < min {
			min = t
		}
		if i == 0 || t > max {
			max = t
		}
		points = append(points, ChartPoint{Day: i + 1, Temperature: t})
	}

	bars := make([]string, 0, len(points))
	for _, pt := range points {
		length := 12
		if max > min {
			length = int((pt.Temperature - min) / (max - min) * 25)
		}
		if length < 1 {
			length = 1
		}
		bars = append(bars, strings.Repeat("▓", length))
	}

	return &ChartCard{
		Title:  fmt.Sprintf("📈 7-Day Temperature Trend (°%s)", unit),
		Points: points,
		Bars:   bars,
	}
}

// titleCase capitalizes each word, matching how descriptions were shown in
// the dashboard ("scattered clouds" -> "Scattered Clouds").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}

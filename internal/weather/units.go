package weather

import (
	"fmt"
	"math"
)

// Temperature unit identifiers as seen by the UI toggle.
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
)

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// CelsiusToFahrenheit converts and rounds to one decimal.
func CelsiusToFahrenheit(c float64) float64 {
	return round1(c*9/5 + 32)
}

// FahrenheitToCelsius converts and rounds to one decimal.
func FahrenheitToCelsius(f float64) float64 {
	return round1((f - 32) * 5 / 9)
}

// Convert renders a stored Celsius temperature in the requested display
// unit. Anything other than UnitFahrenheit is treated as Celsius
// passthrough (rounded to one decimal).
func Convert(celsius float64, unit string) float64 {
	if unit == UnitFahrenheit {
		return CelsiusToFahrenheit(celsius)
	}
	return round1(celsius)
}

// FormatWind renders a wind speed stored in m/s for display: "Calm" for
// zero, mph when the dashboard is in Fahrenheit mode, km/h otherwise.
func FormatWind(speedMS float64, unit string) string {
	if speedMS == 0 {
		return "Calm"
	}
	if unit == UnitFahrenheit {
		return fmt.Sprintf("%.1f mph", speedMS*2.237)
	}
	return fmt.Sprintf("%.1f km/h", speedMS*3.6)
}

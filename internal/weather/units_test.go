package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
	assert.Equal(t, 98.6, CelsiusToFahrenheit(37))
	assert.Equal(t, -40.0, CelsiusToFahrenheit(-40))
}

func TestFahrenheitToCelsius(t *testing.T) {
	assert.Equal(t, 0.0, FahrenheitToCelsius(32))
	assert.Equal(t, 100.0, FahrenheitToCelsius(212))
	assert.Equal(t, -40.0, FahrenheitToCelsius(-40))
}

func TestConvert(t *testing.T) {
	assert.Equal(t, 32.0, Convert(0, UnitFahrenheit))
	assert.Equal(t, 212.0, Convert(100, UnitFahrenheit))

	// Celsius is a rounding passthrough, also for unknown units.
	assert.Equal(t, 21.6, Convert(21.567, UnitCelsius))
	assert.Equal(t, 21.6, Convert(21.567, "K"))
	assert.Equal(t, 15.0, Convert(15, UnitCelsius))
}

func TestConversionRoundTrip(t *testing.T) {
	for x := -80.0; x <= 150.0; x += 0.7 {
		got := FahrenheitToCelsius(CelsiusToFahrenheit(x))
		assert.InDelta(t, x, got, 0.1, "round trip drifted for %v", x)
	}
}

func TestFormatWind(t *testing.T) {
	assert.Equal(t, "Calm", FormatWind(0, UnitCelsius))
	assert.Equal(t, "Calm", FormatWind(0, UnitFahrenheit))
	assert.Equal(t, "18.0 km/h", FormatWind(5, UnitCelsius))
	assert.Equal(t, "11.2 mph", FormatWind(5, UnitFahrenheit))
}

package weather

import "math"

// FeelsLike estimates a perceived temperature for forecast days where the
// provider does not supply one. This is a fixed heuristic carried over from
// the original dashboard, not a standard comfort index:
//
//   - at 27 °C and above, a simplified apparent-temperature formula using
//     humidity (vapour pressure) and wind;
//   - at 10 °C and below, a simplified wind-chill formula with wind in km/h
//     (passthrough below 4.8 km/h, where the formula is out of range);
//   - in between, a linear wind fudge.
//
// Inputs: tempC in Celsius, humidityPct 0-100, windMS in m/s.
func FeelsLike(tempC, humidityPct, windMS float64) float64 {
	switch {
	case tempC >= 27:
		e := humidityPct / 100 * 6.105 * math.Exp(17.27*tempC/(237.7+tempC))
		return tempC + 0.33*e - 0.70*windMS - 4.0
	case tempC <= 10:
		v := windMS * 3.6
		if v < 4.8 {
			return tempC
		}
		vp := math.Pow(v, 0.16)
		return 13.12 + 0.6215*tempC - 11.37*vp + 0.3965*tempC*vp
	default:
		return tempC - 0.5*windMS
	}
}

package session

// Temperature unit and theme values as the dashboard toggles see them.
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is the per-session UI state: active temperature unit, active theme,
// and the last searched city. It is an immutable-per-request value; handlers
// take a State and return the updated one rather than mutating shared data.
type State struct {
	Unit     string `json:"unit"`
	Theme    string `json:"theme"`
	LastCity string `json:"lastCity,omitempty"`
}

// NewState returns the defaults for a fresh session.
func NewState() State {
	return State{
		Unit:  UnitCelsius,
		Theme: ThemeDark,
	}
}

// ToggleUnit flips between Celsius and Fahrenheit. Toggling twice returns
// the original state.
func ToggleUnit(s State) State {
	if s.Unit == UnitFahrenheit {
		s.Unit = UnitCelsius
	} else {
		s.Unit = UnitFahrenheit
	}
	return s
}

// SetUnit applies the unit toggle's new boolean state (true = Fahrenheit).
func SetUnit(s State, fahrenheit bool) State {
	if fahrenheit {
		s.Unit = UnitFahrenheit
	} else {
		s.Unit = UnitCelsius
	}
	return s
}

// SetTheme applies the theme toggle's new boolean state (true = light).
func SetTheme(s State, light bool) State {
	if light {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s
}

// SetCity records the last searched city.
func SetCity(s State, city string) State {
	s.LastCity = city
	return s
}

// Clear drops the last search but keeps unit and theme preferences.
func Clear(s State) State {
	s.LastCity = ""
	return s
}

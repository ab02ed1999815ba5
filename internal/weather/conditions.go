package weather

// Condition classification is a closed, total mapping: any integer code (or
// an absent code) yields exactly one category. Codes follow the
// OpenWeatherMap id scheme; WMO codes from Open-Meteo are translated into
// that scheme first via MapWMOCode.

type codeRange struct {
	min, max int
	cond     Condition
}

// conditionRanges is evaluated top to bottom; the first matching range wins.
var conditionRanges = []codeRange{
	{200, 299, ConditionThunderstorm},
	{300, 499, ConditionDrizzle},
	{500, 599, ConditionRain},
	{600, 699, ConditionSnow},
	{700, 799, ConditionAtmosphere},
	{800, 800, ConditionClear},
	{801, 899, ConditionClouds},
}

// ClassifyCode maps a condition code to its category. A nil or unrecognized
// code yields ConditionUnknown; the function never fails.
func ClassifyCode(code *int) Condition {
	if code == nil {
		return ConditionUnknown
	}
	for _, r := range conditionRanges {
		if *code >= r.min && *code <= r.max {
			return r.cond
		}
	}
	return ConditionUnknown
}

var conditionIcons = map[Condition]string{
	ConditionThunderstorm: "WeatherLightning",
	ConditionDrizzle:      "WeatherRainShower",
	ConditionRain:         "WeatherRain",
	ConditionSnow:         "WeatherSnow",
	ConditionAtmosphere:   "WeatherFog",
	ConditionClear:        "WeatherSunny",
	ConditionClouds:       "WeatherCloudy",
}

var conditionEmoji = map[Condition]string{
	ConditionThunderstorm: "⛈️",
	ConditionDrizzle:      "🌦️",
	ConditionRain:         "🌧️",
	ConditionSnow:         "❄️",
	ConditionAtmosphere:   "🌫️",
	ConditionClear:        "☀️",
	ConditionClouds:       "☁️",
}

// ConditionIcon returns the Fluent icon name for a category. Unknown
// categories get the generic weather icon.
func ConditionIcon(c Condition) string {
	if icon, ok := conditionIcons[c]; ok {
		return icon
	}
	return "CloudWeather"
}

// ConditionEmoji returns the emoji for a category, with a default for
// unknown categories.
func ConditionEmoji(c Condition) string {
	if e, ok := conditionEmoji[c]; ok {
		return e
	}
	return "🌤️"
}

type owmMapping struct {
	id   int
	desc string
}

// wmoToOWM translates WMO weather codes (Open-Meteo) into OpenWeatherMap-style
// ids plus a human description. Mapping based on the WMO 4677 code table.
var wmoToOWM = map[int]owmMapping{
	0:  {800, "clear sky"},
	1:  {801, "mainly clear"},
	2:  {802, "partly cloudy"},
	3:  {804, "overcast clouds"},
	45: {741, "fog"},
	48: {741, "depositing rime fog"},
	51: {300, "light drizzle"},
	53: {301, "moderate drizzle"},
	55: {302, "dense drizzle"},
	56: {310, "light freezing drizzle"},
	57: {312, "dense freezing drizzle"},
	61: {500, "slight rain"},
	63: {501, "moderate rain"},
	65: {502, "heavy rain"},
	66: {511, "light freezing rain"},
	67: {511, "heavy freezing rain"},
	71: {600, "slight snow fall"},
	73: {601, "moderate snow fall"},
	75: {602, "heavy snow fall"},
	77: {611, "snow grains"},
	80: {520, "slight rain showers"},
	81: {521, "moderate rain showers"},
	82: {522, "violent rain showers"},
	85: {620, "slight snow showers"},
	86: {622, "heavy snow showers"},
	95: {211, "thunderstorm"},
	96: {210, "thunderstorm with slight hail"},
	99: {212, "thunderstorm with heavy hail"},
}

// MapWMOCode converts a WMO weather code to an OpenWeatherMap-style id and
// description. Unrecognized codes return (nil, "unknown conditions") so the
// classifier falls through to ConditionUnknown.
func MapWMOCode(wmo int) (*int, string) {
	m, ok := wmoToOWM[wmo]
	if !ok {
		return nil, "unknown conditions"
	}
	id := m.id
	return &id, m.desc
}

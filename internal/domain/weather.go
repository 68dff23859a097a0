package domain

// Weather is the current condition shown in the dashboard corner.
// Fields fall back to "Н/Д" when the lookup is unavailable.
type Weather struct {
	Temperature string `json:"temp"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
}

// WeatherUnavailable is served when the weather key is missing or the
// lookup fails. The dashboard renders it verbatim.
func WeatherUnavailable() Weather {
	return Weather{Temperature: "Н/Д", Description: "Н/Д", Icon: ""}
}

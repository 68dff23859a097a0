package openweather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/openweather/weatherclient"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

type stubWeatherClient struct {
	response weatherclient.CurrentWeatherResponse
	err      error
	calls    int
}

func (s *stubWeatherClient) GetCurrentWeather(ctx context.Context) (weatherclient.CurrentWeatherResponse, error) {
	s.calls++
	return s.response, s.err
}

func weatherResponse(temp float64, description, icon string) weatherclient.CurrentWeatherResponse {
	var resp weatherclient.CurrentWeatherResponse
	resp.Main.Temp = temp
	resp.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{
		{Description: description, Icon: icon},
	}
	return resp
}

func TestWeatherService_CurrentWeather(t *testing.T) {
	cfg := &config.Config{Weather: config.Weather{Key: "secret"}}
	client := &stubWeatherClient{response: weatherResponse(21.4, "ясно", "01d")}

	weather := New(cfg, client).CurrentWeather(context.Background())

	assert.Equal(t, "21°C", weather.Temperature)
	assert.Equal(t, "Ясно", weather.Description)
	assert.Equal(t, "01d", weather.Icon)
}

func TestWeatherService_CurrentWeather_RoundsTemperature(t *testing.T) {
	cfg := &config.Config{Weather: config.Weather{Key: "secret"}}
	client := &stubWeatherClient{response: weatherResponse(-3.6, "сніг", "13d")}

	weather := New(cfg, client).CurrentWeather(context.Background())

	assert.Equal(t, "-4°C", weather.Temperature)
}

func TestWeatherService_CurrentWeather_MissingKeySkipsLookup(t *testing.T) {
	cfg := &config.Config{}
	client := &stubWeatherClient{}

	weather := New(cfg, client).CurrentWeather(context.Background())

	assert.Equal(t, domain.WeatherUnavailable(), weather)
	assert.Zero(t, client.calls)
}

func TestWeatherService_CurrentWeather_LookupFailureDegrades(t *testing.T) {
	cfg := &config.Config{Weather: config.Weather{Key: "secret"}}
	client := &stubWeatherClient{err: assert.AnError}

	weather := New(cfg, client).CurrentWeather(context.Background())

	assert.Equal(t, domain.WeatherUnavailable(), weather)
}

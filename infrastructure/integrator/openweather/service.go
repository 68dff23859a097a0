package openweather

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/openweather/weatherclient"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

// WeatherIntegrator resolves the current weather for the dashboard
// corner. It never returns an error: any failure, including a missing
// API key, degrades to the N/A placeholder.
type WeatherIntegrator interface {
	CurrentWeather(ctx context.Context) domain.Weather
}

type WeatherService struct {
	cfg    *config.Config
	Client weatherclient.Client
}

func New(cfg *config.Config, client weatherclient.Client) WeatherIntegrator {
	return &WeatherService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WeatherService) CurrentWeather(ctx context.Context) domain.Weather {
	if s.cfg.Weather.Key == "" {
		return domain.WeatherUnavailable()
	}

	resp, err := s.Client.GetCurrentWeather(ctx)
	if err != nil {
		logrus.WithError(err).Warn("weather: lookup failed, serving N/A")
		return domain.WeatherUnavailable()
	}

	weather := domain.Weather{
		Temperature: fmt.Sprintf("%d°C", int(math.Round(resp.Main.Temp))),
		Description: "Н/Д",
		Icon:        "",
	}

	if len(resp.Weather) > 0 {
		weather.Description = capitalize(resp.Weather[0].Description)
		weather.Icon = resp.Weather[0].Icon
	}

	return weather
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

package weatherclient

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CurrentWeatherResponse is the subset of the OpenWeather payload the
// dashboard renders.
type CurrentWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Client performs the single-shot current-weather lookup.
type Client interface {
	GetCurrentWeather(ctx context.Context) (CurrentWeatherResponse, error)
}

type WeatherClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WeatherClient{
		httpClient: &http.Client{
			Timeout: cfg.Weather.RequestTimeout,
		},
		config: cfg,
	}
}

func (c *WeatherClient) GetCurrentWeather(ctx context.Context) (CurrentWeatherResponse, error) {
	var response CurrentWeatherResponse

	query := url.Values{}
	query.Set("lat", c.config.Weather.Latitude)
	query.Set("lon", c.config.Weather.Longitude)
	query.Set("appid", c.config.Weather.Key)
	query.Set("units", "metric")
	query.Set("lang", c.config.Weather.Language)

	endpoint := c.config.Weather.URL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return response, errors.Wrap(err, "weather: building request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "weather: executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, errors.Errorf("weather: request failed with status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "weather: decoding response")
	}

	return response, nil
}

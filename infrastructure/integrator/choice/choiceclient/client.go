package choiceclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	choicedomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListBookingsParams is the time window a booking list covers.
type ListBookingsParams struct {
	From time.Time
	Till time.Time
}

// Client talks to the Choice booking platform.
type Client interface {
	ListBookings(ctx context.Context, params ListBookingsParams) ([]choicedomain.BookingEntry, error)
}

type ChoiceClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ChoiceClient{
		httpClient: &http.Client{
			Timeout: cfg.Choice.RequestTimeout,
		},
		config: cfg,
	}
}

// ListBookings fetches the bookings whose booking time falls in the
// given window, capped at the configured page size.
func (c *ChoiceClient) ListBookings(ctx context.Context, params ListBookingsParams) ([]choicedomain.BookingEntry, error) {
	endpoint, err := url.Parse(c.config.Choice.URL)
	if err != nil {
		return nil, errors.Wrap(err, "choice: parsing base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "/bookings/list")

	query := endpoint.Query()
	query.Set("from", params.From.UTC().Format(time.RFC3339))
	query.Set("till", params.Till.UTC().Format(time.RFC3339))
	query.Set("periodField", "bookingDt")
	query.Set("page", "1")
	query.Set("perPage", strconv.Itoa(c.config.Choice.PageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "choice: building request")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Choice.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "choice: executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("choice: request failed with status %s", resp.Status)
	}

	var response []choicedomain.BookingEntry
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "choice: decoding response")
	}

	return response, nil
}

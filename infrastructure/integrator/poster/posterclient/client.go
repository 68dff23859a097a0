package posterclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
)

// Client talks to the Poster POS API page by page. Pagination loops
// live in the services consuming the client, so a single failed page
// can degrade the run to partial results there.
type Client interface {
	GetProductsPage(ctx context.Context, kind posterdomain.ItemKind, page int) ([]posterdomain.ProductEntry, error)
	GetTransactionsPage(ctx context.Context, date time.Time, page int) (posterdomain.TransactionsBody, error)
	GetDashTransactions(ctx context.Context, date time.Time) ([]posterdomain.DashTransaction, error)
}

type PosterClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PosterClient{
		httpClient: &http.Client{
			Timeout: cfg.Poster.RequestTimeout,
		},
		config: cfg,
	}
}

// maxRetries bounds the retry loop for idempotent GETs. Poster
// occasionally drops a request under load; one or two retries is
// enough to ride it out without stalling a dashboard poll.
const maxRetries = 2

// methodURL builds the endpoint URL for one API method with the
// account token attached.
func (c *PosterClient) methodURL(method string, query url.Values) string {
	query.Set("token", c.config.Poster.Token)

	endpoint := url.URL{
		Scheme:   "https",
		Host:     fmt.Sprintf("%s.joinposter.com", c.config.Poster.AccountName),
		Path:     "/api/" + method,
		RawQuery: query.Encode(),
	}

	return endpoint.String()
}

// doGet executes one idempotent GET with bounded retry and backoff.
// Retries cover transport errors and 5xx responses; 4xx responses are
// configuration problems and fail immediately.
func (c *PosterClient) doGet(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
			}).Debug("poster: retrying request")
		}

		body, retryable, err := c.attempt(ctx, endpoint)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

func (c *PosterClient) attempt(ctx context.Context, endpoint string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "poster: building request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, errors.Wrap(err, "poster: executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode >= http.StatusInternalServerError,
			errors.Errorf("poster: request failed with status %s", resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrap(err, "poster: reading response body")
	}

	return body, false, nil
}

package posterclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
)

// GetTransactionsPage fetches one page of checks for the exact
// calendar date. The body carries the server-reported total count and
// page size that terminate the caller's loop.
func (c *PosterClient) GetTransactionsPage(ctx context.Context, date time.Time, page int) (posterdomain.TransactionsBody, error) {
	day := date.Format(time.DateOnly)

	query := url.Values{}
	query.Set("date_from", day)
	query.Set("date_to", day)
	query.Set("per_page", strconv.Itoa(c.config.Poster.PageSize))
	query.Set("page", strconv.Itoa(page))

	var response posterdomain.TransactionsResponse

	body, err := c.doGet(ctx, c.methodURL("transactions.getTransactions", query))
	if err != nil {
		return response.Response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response.Response, errors.Wrap(err, "poster: decoding transactions response")
	}

	return response.Response, nil
}

// GetDashTransactions fetches today's checks in the dashboard format
// used for the table-occupancy view. Not paginated upstream.
func (c *PosterClient) GetDashTransactions(ctx context.Context, date time.Time) ([]posterdomain.DashTransaction, error) {
	day := date.Format("20060102")

	query := url.Values{}
	query.Set("dateFrom", day)
	query.Set("dateTo", day)

	body, err := c.doGet(ctx, c.methodURL("dash.getTransactions", query))
	if err != nil {
		return nil, err
	}

	var response posterdomain.DashTransactionsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "poster: decoding dash transactions response")
	}

	return response.Response, nil
}

package posterclient

import (
	"context"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetProductsPage fetches one page of the menu catalog for the given
// item kind. The caller detects the end of a kind by a short page.
func (c *PosterClient) GetProductsPage(ctx context.Context, kind posterdomain.ItemKind, page int) ([]posterdomain.ProductEntry, error) {
	query := url.Values{}
	query.Set("type", string(kind))
	query.Set("per_page", strconv.Itoa(c.config.Poster.PageSize))
	query.Set("page", strconv.Itoa(page))

	body, err := c.doGet(ctx, c.methodURL("menu.getProducts", query))
	if err != nil {
		return nil, err
	}

	var response posterdomain.ProductsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "poster: decoding products response")
	}

	return response.Response, nil
}

package poster

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

type stubPosterClient struct {
	products     []posterdomain.ProductEntry
	productsErr  error
	transactions posterdomain.TransactionsBody
	trxErr       error
	dash         []posterdomain.DashTransaction
	dashErr      error
}

func (s *stubPosterClient) GetProductsPage(ctx context.Context, kind posterdomain.ItemKind, page int) ([]posterdomain.ProductEntry, error) {
	return s.products, s.productsErr
}

func (s *stubPosterClient) GetTransactionsPage(ctx context.Context, date time.Time, page int) (posterdomain.TransactionsBody, error) {
	return s.transactions, s.trxErr
}

func (s *stubPosterClient) GetDashTransactions(ctx context.Context, date time.Time) ([]posterdomain.DashTransaction, error) {
	return s.dash, s.dashErr
}

func posterConfig() *config.Config {
	return &config.Config{
		Poster: config.Poster{
			AccountName: "poka-net3",
			Token:       "secret",
			PageSize:    500,
		},
	}
}

func TestPosterService_CatalogPage(t *testing.T) {
	client := &stubPosterClient{
		products: []posterdomain.ProductEntry{
			{ProductID: json.Number("100"), CategoryID: json.Number("4"), Cost: json.Number("2500")},
			{ProductID: json.Number("200"), CategoryID: json.Number("7"), Cost: json.Number("")},
			{ProductID: json.Number(""), CategoryID: json.Number("4"), Cost: json.Number("100")},
			{ProductID: json.Number("300"), CategoryID: json.Number("0"), Cost: json.Number("100")},
		},
	}

	service := New(posterConfig(), client)

	products, rawCount, err := service.CatalogPage(context.Background(), posterdomain.KindProducts, 1)
	assert.NoError(t, err)

	// Malformed entries are skipped, a missing cost parses to zero.
	// The raw count still reflects every entry the page carried, so
	// the caller's short-page check is not fooled by skips.
	assert.Equal(t, 4, rawCount)
	assert.Len(t, products, 2)
	assert.Equal(t, domain.Product{ID: 100, CategoryID: 4, UnitCost: 25.0}, products[0])
	assert.Equal(t, domain.Product{ID: 200, CategoryID: 7, UnitCost: 0}, products[1])
}

func TestPosterService_TransactionsPage(t *testing.T) {
	client := &stubPosterClient{
		transactions: posterdomain.TransactionsBody{
			Count: json.Number("2"),
			Page:  posterdomain.TransactionsPageInfo{PerPage: json.Number("100")},
			Data: []posterdomain.TransactionEntry{
				{
					TransactionID: json.Number("555"),
					Status:        json.Number("2"),
					DateClose:     "2025-06-15 12:30:45",
					Products: []posterdomain.TransactionProduct{
						{ProductID: json.Number("100"), Num: json.Number("3.0"), PayedSum: json.Number("15000")},
						{ProductID: json.Number(""), Num: json.Number("1"), PayedSum: json.Number("100")},
					},
				},
				{
					TransactionID: json.Number("556"),
					Status:        json.Number("1"),
					DateClose:     "garbage",
				},
			},
		},
	}

	service := New(posterConfig(), client)

	page, err := service.TransactionsPage(context.Background(), time.Now(), 1)
	assert.NoError(t, err)

	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 100, page.PerPage)
	assert.Len(t, page.Transactions, 2)

	closed := page.Transactions[0]
	assert.Equal(t, 555, closed.ID)
	assert.Equal(t, domain.TransactionClosed, closed.Status)
	assert.Equal(t, time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC), closed.ClosedAt)
	assert.Len(t, closed.Items, 1)
	assert.Equal(t, domain.LineItem{ProductID: 100, Quantity: 3, SaleAmount: 150.0}, closed.Items[0])

	open := page.Transactions[1]
	assert.Equal(t, domain.TransactionOpen, open.Status)
	assert.True(t, open.ClosedAt.IsZero())
}

func TestPosterService_TransactionsPage_FallsBackToConfiguredPageSize(t *testing.T) {
	client := &stubPosterClient{
		transactions: posterdomain.TransactionsBody{
			Count: json.Number("1"),
		},
	}

	service := New(posterConfig(), client)

	page, err := service.TransactionsPage(context.Background(), time.Now(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 500, page.PerPage)
}

func TestPosterService_OpenTables(t *testing.T) {
	client := &stubPosterClient{
		dash: []posterdomain.DashTransaction{
			{Status: json.Number("1"), TableName: json.Number("3"), Name: "Олена"},
			{Status: json.Number("2"), TableName: json.Number("5"), Name: "Андрій"},
			{Status: json.Number("1"), TableName: json.Number("7"), Name: ""},
			{Status: json.Number("1"), TableName: json.Number(""), Name: "Ігор"},
		},
	}

	service := New(posterConfig(), client)

	active, err := service.OpenTables(context.Background(), time.Now())
	assert.NoError(t, err)

	// Closed checks and rows without a table are dropped; a missing
	// waiter renders as a dash.
	assert.Equal(t, map[int]string{3: "Олена", 7: "—"}, active)
}

func TestPosterService_HasToken(t *testing.T) {
	assert.True(t, New(posterConfig(), &stubPosterClient{}).HasToken())
	assert.False(t, New(&config.Config{}, &stubPosterClient{}).HasToken())
}

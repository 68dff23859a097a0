package poster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/posterclient"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/money"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/utils"
)

// closeTimestampLayout is how Poster serializes check close times.
const closeTimestampLayout = "2006-01-02 15:04:05"

// PosterIntegrator is the domain-typed view of the POS platform. All
// minor-unit amounts are converted to major units here, at the single
// point where upstream money enters the system. Malformed entries are
// skipped, never fatal.
type PosterIntegrator interface {
	CatalogPage(ctx context.Context, kind posterdomain.ItemKind, page int) ([]domain.Product, int, error)
	TransactionsPage(ctx context.Context, date time.Time, page int) (domain.TransactionsPage, error)
	OpenTables(ctx context.Context, date time.Time) (map[int]string, error)
	HasToken() bool
}

type PosterService struct {
	cfg    *config.Config
	Client posterclient.Client
}

func New(cfg *config.Config, client posterclient.Client) PosterIntegrator {
	return &PosterService{
		cfg:    cfg,
		Client: client,
	}
}

// HasToken reports whether the account credential is configured.
// Without it every POS operation short-circuits to empty results
// before any network I/O.
func (s *PosterService) HasToken() bool {
	return s.cfg.Poster.Token != ""
}

// CatalogPage fetches one catalog page and parses it into products.
// Entries with a missing id or category are skipped. The raw entry
// count is returned alongside: pagination must terminate on the
// upstream page size, and a skipped entry still occupied a slot on
// the page.
func (s *PosterService) CatalogPage(ctx context.Context, kind posterdomain.ItemKind, page int) ([]domain.Product, int, error) {
	entries, err := s.Client.GetProductsPage(ctx, kind, page)
	if err != nil {
		return nil, 0, err
	}

	products := make([]domain.Product, 0, len(entries))
	for _, entry := range entries {
		id, okID := parseNumber(entry.ProductID)
		categoryID, okCat := parseNumber(entry.CategoryID)
		if !okID || !okCat || id == 0 || categoryID == 0 {
			logrus.WithFields(logrus.Fields{
				"product_id":  entry.ProductID.String(),
				"category_id": entry.CategoryID.String(),
			}).Debug("poster: skipping malformed catalog entry")
			continue
		}

		// Missing cost parses to zero: the product still classifies
		// and sells, it just contributes nothing to the cost totals.
		unitCost, ok := money.FromMinorUnitsString(entry.Cost.String())
		if !ok {
			unitCost = 0
		}

		products = append(products, domain.Product{
			ID:         id,
			CategoryID: categoryID,
			UnitCost:   unitCost,
		})
	}

	return products, len(entries), nil
}

// TransactionsPage fetches one page of checks and parses them, line
// items included, into domain transactions.
func (s *PosterService) TransactionsPage(ctx context.Context, date time.Time, page int) (domain.TransactionsPage, error) {
	body, err := s.Client.GetTransactionsPage(ctx, date, page)
	if err != nil {
		return domain.TransactionsPage{}, err
	}

	result := domain.TransactionsPage{
		Transactions: make([]domain.Transaction, 0, len(body.Data)),
	}
	result.TotalCount, _ = parseNumber(body.Count)
	result.PerPage, _ = parseNumber(body.Page.PerPage)
	if result.PerPage == 0 {
		result.PerPage = s.cfg.Poster.PageSize
	}

	for _, entry := range body.Data {
		trx := domain.Transaction{
			Status: domain.TransactionStatus(entry.Status.String()),
			Items:  make([]domain.LineItem, 0, len(entry.Products)),
		}
		trx.ID, _ = parseNumber(entry.TransactionID)

		if closedAt, err := time.Parse(closeTimestampLayout, entry.DateClose); err == nil {
			trx.ClosedAt = closedAt
		}

		for _, product := range entry.Products {
			productID, okID := parseNumber(product.ProductID)
			quantity, okNum := utils.ParseIntLoose(product.Num.String())
			if !okID || !okNum || productID == 0 {
				logrus.WithFields(logrus.Fields{
					"transaction_id": entry.TransactionID.String(),
					"product_id":     product.ProductID.String(),
				}).Debug("poster: skipping malformed line item")
				continue
			}

			saleAmount, ok := money.FromMinorUnitsString(product.PayedSum.String())
			if !ok {
				saleAmount = 0
			}

			trx.Items = append(trx.Items, domain.LineItem{
				ProductID:  productID,
				Quantity:   quantity,
				SaleAmount: saleAmount,
			})
		}

		result.Transactions = append(result.Transactions, trx)
	}

	return result, nil
}

// OpenTables returns the table→waiter mapping for checks that are not
// yet closed, which is the live occupancy signal.
func (s *PosterService) OpenTables(ctx context.Context, date time.Time) (map[int]string, error) {
	rows, err := s.Client.GetDashTransactions(ctx, date)
	if err != nil {
		return nil, err
	}

	active := make(map[int]string)
	for _, row := range rows {
		if domain.TransactionStatus(row.Status.String()) == domain.TransactionClosed {
			continue
		}

		tableID, ok := parseNumber(row.TableName)
		if !ok || tableID == 0 {
			continue
		}

		waiter := row.Name
		if waiter == "" {
			waiter = "—"
		}
		active[tableID] = waiter
	}

	return active, nil
}

// parseNumber reads a Poster numeric field that may arrive as a JSON
// number or a string, possibly with a fractional part.
func parseNumber(n json.Number) (int, bool) {
	return utils.ParseIntLoose(n.String())
}

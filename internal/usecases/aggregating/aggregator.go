package aggregating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/classifying"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/money"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/outcome"
)

// DayAggregator reduces one calendar day of POS transactions into
// zone totals and a cumulative hourly series.
type DayAggregator interface {
	AggregateDay(ctx context.Context, date time.Time, catalog domain.CatalogSnapshot) (domain.DayAggregate, outcome.Outcome)
}

// Aggregator pages the transactions endpoint and folds matched line
// items into per-zone totals plus hourly buckets.
//
// Status policy: only transactions explicitly marked closed count. An
// open check keeps changing until it is closed; including it would let
// totals move backwards between refreshes.
type Aggregator struct {
	cfg        *config.Config
	poster     poster.PosterIntegrator
	classifier classifying.Classifier
}

func NewAggregator(cfg *config.Config, posterService poster.PosterIntegrator, classifier classifying.Classifier) *Aggregator {
	return &Aggregator{
		cfg:        cfg,
		poster:     posterService,
		classifier: classifier,
	}
}

// AggregateDay fetches and reduces every transaction page for the
// date. A page failure aborts further pagination and returns what was
// accumulated so far: a live dashboard prefers partial data over an
// error.
func (a *Aggregator) AggregateDay(ctx context.Context, date time.Time, catalog domain.CatalogSnapshot) (domain.DayAggregate, outcome.Outcome) {
	hourFrom, hourTill := a.cfg.Service.HourFrom, a.cfg.Service.HourTill
	hourCount := hourTill - hourFrom + 1

	hotByHour := make([]int, hourCount)
	coldByHour := make([]int, hourCount)

	totals := map[domain.Zone]domain.ZoneTotals{}
	for _, zone := range domain.Zones {
		totals[zone] = domain.ZoneTotals{Zone: zone}
	}

	out := outcome.OK()

	for page := 1; ; page++ {
		trxPage, err := a.poster.TransactionsPage(ctx, date, page)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"date": date.Format(time.DateOnly),
				"page": page,
			}).Warn("aggregating: transactions page fetch failed, serving partial totals")

			if page == 1 {
				out = outcome.Failed(err)
			} else {
				out = outcome.Partial(err)
			}
			break
		}

		if len(trxPage.Transactions) == 0 {
			break
		}

		for _, trx := range trxPage.Transactions {
			a.foldTransaction(trx, catalog, totals, hotByHour, coldByHour)
		}

		if trxPage.PerPage*page >= trxPage.TotalCount {
			break
		}
	}

	aggregate := domain.DayAggregate{
		Date:   date,
		Totals: roundTotals(totals),
		Hourly: cumulative(hotByHour, coldByHour, hourFrom),
	}

	return aggregate, out
}

// foldTransaction adds one closed transaction's line items into the
// running totals and hourly buckets.
func (a *Aggregator) foldTransaction(
	trx domain.Transaction,
	catalog domain.CatalogSnapshot,
	totals map[domain.Zone]domain.ZoneTotals,
	hotByHour, coldByHour []int,
) {
	if trx.Status != domain.TransactionClosed {
		return
	}

	// A transaction outside the service window still counts toward the
	// day totals; it just has no hourly bucket.
	hourIdx := -1
	if !trx.ClosedAt.IsZero() {
		hour := trx.ClosedAt.Hour()
		if hour >= a.cfg.Service.HourFrom && hour <= a.cfg.Service.HourTill {
			hourIdx = hour - a.cfg.Service.HourFrom
		}
	}

	for _, item := range trx.Items {
		product, known := catalog.Lookup(item.ProductID)
		if !known {
			continue
		}

		zone := a.classifier.Classify(product.CategoryID)
		if zone == domain.ZoneUnclassified {
			continue
		}

		zoneTotals := totals[zone]
		zoneTotals.UnitCount += item.Quantity
		zoneTotals.SaleAmount += item.SaleAmount
		zoneTotals.CostAmount += float64(item.Quantity) * product.UnitCost
		totals[zone] = zoneTotals

		// Bar is excluded from the hourly chart: only the kitchen
		// stations are compared hour by hour.
		if hourIdx >= 0 {
			switch zone {
			case domain.ZoneHot:
				hotByHour[hourIdx] += item.Quantity
			case domain.ZoneCold:
				coldByHour[hourIdx] += item.Quantity
			}
		}
	}
}

// cumulative converts additive hourly buckets into running totals via
// prefix sum, which makes each series monotonic non-decreasing.
func cumulative(hotByHour, coldByHour []int, hourFrom int) domain.HourlySeries {
	series := domain.HourlySeries{
		Labels: make([]string, len(hotByHour)),
		Hot:    make([]int, len(hotByHour)),
		Cold:   make([]int, len(coldByHour)),
	}

	hotTotal, coldTotal := 0, 0
	for i := range hotByHour {
		hotTotal += hotByHour[i]
		coldTotal += coldByHour[i]
		series.Hot[i] = hotTotal
		series.Cold[i] = coldTotal
		series.Labels[i] = fmt.Sprintf("%02d:00", hourFrom+i)
	}

	return series
}

func roundTotals(totals map[domain.Zone]domain.ZoneTotals) map[domain.Zone]domain.ZoneTotals {
	for zone, t := range totals {
		t.SaleAmount = money.Round2(t.SaleAmount)
		t.CostAmount = money.Round2(t.CostAmount)
		totals[zone] = t
	}
	return totals
}

package aggregating

import (
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/openweather"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/cataloging"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/money"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/outcome"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/utils"
)

const snapshotIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Insighter serves the aggregate snapshot the dashboard polls. Within
// the aggregate TTL every call returns the identical snapshot.
type Insighter interface {
	Aggregate(ctx context.Context) *domain.AggregateSnapshot
	ForceRefresh(ctx context.Context) *domain.AggregateSnapshot
}

// Service owns the current AggregateSnapshot. The mutex covers the
// staleness check and the whole recomputation, so at most one refresh
// is in flight: concurrent requests that observe a stale snapshot wait
// for the winner and then serve the snapshot it installed.
type Service struct {
	cfg        *config.Config
	catalogs   cataloging.Cataloger
	aggregator DayAggregator
	weather    openweather.WeatherIntegrator

	now func() time.Time

	mu       sync.Mutex
	snapshot *domain.AggregateSnapshot
}

func NewService(
	cfg *config.Config,
	catalogs cataloging.Cataloger,
	aggregator DayAggregator,
	weather openweather.WeatherIntegrator,
) *Service {
	return &Service{
		cfg:        cfg,
		catalogs:   catalogs,
		aggregator: aggregator,
		weather:    weather,
		now:        time.Now,
	}
}

// WithClock injects a clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Aggregate returns the cached snapshot, recomputing it first when the
// aggregate TTL has elapsed.
func (s *Service) Aggregate(ctx context.Context) *domain.AggregateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && s.now().Sub(s.snapshot.CapturedAt) <= s.cfg.Cache.AggregateTTL {
		return s.snapshot
	}

	return s.refreshLocked(ctx)
}

// ForceRefresh recomputes regardless of age. Used by the operational
// endpoint and the prewarm job.
func (s *Service) ForceRefresh(ctx context.Context) *domain.AggregateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

// refreshLocked rebuilds the snapshot in full and replaces it
// atomically. The previous snapshot stays visible to concurrent
// readers until the replacement is complete; no reader ever observes a
// partially built snapshot.
func (s *Service) refreshLocked(ctx context.Context) *domain.AggregateSnapshot {
	started := s.now()

	catalog := s.catalogs.Catalog(ctx)

	today := started
	comparisonDay := today.AddDate(0, 0, -s.cfg.Service.ComparisonOffsetDays)

	todayAgg, todayOut := s.aggregator.AggregateDay(ctx, today, catalog)
	comparisonAgg, comparisonOut := s.aggregator.AggregateDay(ctx, comparisonDay, catalog)

	if out := outcome.Merge(todayOut, comparisonOut); !out.IsOK() {
		logrus.WithError(out.Err()).WithFields(logrus.Fields{
			"status": out.Status,
			"today":  today.Format(time.DateOnly),
		}).Warn("aggregating: snapshot refresh degraded, serving partial data")
	}

	snapshot := &domain.AggregateSnapshot{
		ID:            newSnapshotID(),
		Today:         todayAgg,
		ComparisonDay: comparisonAgg,
		Shares:        s.shares(todayAgg),
		FoodCost:      foodCost(todayAgg),
		Weather:       s.weather.CurrentWeather(ctx),
		CapturedAt:    s.now(),
	}

	s.snapshot = snapshot

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"units_today": todayAgg.UnitSum(),
		"duration_ms": s.now().Sub(started).Milliseconds(),
	}).Info("aggregating: snapshot replaced")

	return snapshot
}

// shares computes each zone's portion of today's unit count, in
// percent. All shares are zero when nothing was sold.
func (s *Service) shares(day domain.DayAggregate) map[domain.Zone]float64 {
	shares := make(map[domain.Zone]float64, len(domain.Zones))

	total := day.UnitSum()
	for _, zone := range domain.Zones {
		if total == 0 {
			shares[zone] = 0
			continue
		}

		share := float64(day.Totals[zone].UnitCount) / float64(total) * 100
		shares[zone] = utils.RoundWithPrecision(share, s.cfg.Service.SharePrecision)
	}

	return shares
}

// foodCost computes cost-of-goods percentages per zone and overall,
// guarding every division against zero sales.
func foodCost(day domain.DayAggregate) domain.FoodCost {
	fc := domain.FoodCost{
		ByZone: make(map[domain.Zone]float64, len(domain.Zones)),
	}

	var saleSum, costSum float64
	for _, zone := range domain.Zones {
		t := day.Totals[zone]
		saleSum += t.SaleAmount
		costSum += t.CostAmount

		if t.SaleAmount == 0 {
			fc.ByZone[zone] = 0
			continue
		}
		fc.ByZone[zone] = money.Round2(t.CostAmount / t.SaleAmount * 100)
	}

	if saleSum > 0 {
		fc.Overall = money.Round2(costSum / saleSum * 100)
	}

	return fc
}

func newSnapshotID() string {
	id, err := gonanoid.Generate(snapshotIDAlphabet, 8)
	if err != nil {
		return ""
	}
	return id
}

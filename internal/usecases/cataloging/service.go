package cataloging

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster"
	posterdomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/outcome"
)

// ErrMissingToken marks a refresh skipped because the POS credential
// is absent. No network I/O happens in that case.
var ErrMissingToken = errors.New("cataloging: poster token is not configured")

// Cataloger serves the product catalog from a long-TTL cache. This is
// the load-shedding contract that keeps the catalog endpoint off the
// dashboard hot path.
type Cataloger interface {
	Catalog(ctx context.Context) domain.CatalogSnapshot
	ForceRefresh(ctx context.Context) (domain.CatalogSnapshot, outcome.Outcome)
}

// Service caches the catalog snapshot. At most one refresh is in
// flight at a time: the mutex covers both the staleness check and the
// refresh, so concurrent callers that observe a stale snapshot share
// one upstream round of pagination.
type Service struct {
	cfg    *config.Config
	poster poster.PosterIntegrator

	now func() time.Time

	mu       sync.Mutex
	snapshot domain.CatalogSnapshot
}

func NewService(cfg *config.Config, posterService poster.PosterIntegrator) *Service {
	return &Service{
		cfg:    cfg,
		poster: posterService,
		now:    time.Now,
	}
}

// WithClock injects a clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Catalog returns the cached snapshot, refreshing it first when it is
// older than the catalog TTL or still empty.
func (s *Service) Catalog(ctx context.Context) domain.CatalogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snapshot.Empty() && s.now().Sub(s.snapshot.CapturedAt) < s.cfg.Cache.CatalogTTL {
		return s.snapshot
	}

	snapshot, out := s.refreshLocked(ctx)
	if err := out.Err(); err != nil {
		logrus.WithError(err).WithField("status", out.Status).
			Warn("cataloging: catalog refresh degraded")
	}

	return snapshot
}

// ForceRefresh refreshes regardless of age. Used by the operational
// endpoint and the prewarm job.
func (s *Service) ForceRefresh(ctx context.Context) (domain.CatalogSnapshot, outcome.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

// refreshLocked pages both catalog kinds to exhaustion and replaces
// the snapshot wholesale. A kind's pagination ends when the upstream
// page held fewer raw entries than the page size, or on the first
// upstream error; whatever was parsed up to that point is kept. The
// short-page check counts raw entries, not parsed products: a full
// page with a malformed entry in it is still a full page. The previous
// snapshot survives only a refresh that produced nothing at all, so an
// upstream outage never wipes a usable catalog.
func (s *Service) refreshLocked(ctx context.Context) (domain.CatalogSnapshot, outcome.Outcome) {
	if !s.poster.HasToken() {
		return s.snapshot, outcome.Failed(ErrMissingToken)
	}

	products := make(map[int]domain.Product)
	var causes []error

	for _, kind := range posterdomain.Kinds {
		for page := 1; ; page++ {
			entries, rawCount, err := s.poster.CatalogPage(ctx, kind, page)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"kind": kind,
					"page": page,
				}).Warn("cataloging: catalog page fetch failed, keeping what was parsed")
				causes = append(causes, err)
				break
			}

			for _, product := range entries {
				products[product.ID] = product
			}

			if rawCount < s.cfg.Poster.PageSize {
				break
			}
		}
	}

	if len(products) == 0 && len(causes) > 0 {
		return s.snapshot, outcome.Failed(causes...)
	}

	s.snapshot = domain.CatalogSnapshot{
		Products:   products,
		CapturedAt: s.now(),
	}

	logrus.WithField("products", len(products)).Info("cataloging: catalog snapshot replaced")

	if len(causes) > 0 {
		return s.snapshot, outcome.Partial(causes...)
	}
	return s.snapshot, outcome.OK()
}

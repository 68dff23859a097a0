package tables

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/booking"
)

// TableService builds the live hall/terrace occupancy view, merged
// with today's reservations. Computed on every request, never cached:
// the whole point is showing which tables are open right now.
type TableService interface {
	FloorPlan(ctx context.Context) domain.FloorPlan
}

type Service struct {
	cfg      *config.Config
	poster   poster.PosterIntegrator
	bookings booking.BookingService
	now      func() time.Time
}

func NewService(cfg *config.Config, posterService poster.PosterIntegrator, bookings booking.BookingService) *Service {
	return &Service{
		cfg:      cfg,
		poster:   posterService,
		bookings: bookings,
		now:      time.Now,
	}
}

// WithClock injects a clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// FloorPlan tags each configured table occupied/free with its waiter
// and attaches the reservation targeting it, if any.
func (s *Service) FloorPlan(ctx context.Context) domain.FloorPlan {
	active, err := s.poster.OpenTables(ctx, s.now())
	if err != nil {
		logrus.WithError(err).Warn("tables: open-tables lookup failed, serving all tables free")
		active = map[int]string{}
	}

	reservationByTable := make(map[string]*domain.TableReservation)
	for _, b := range s.bookings.TodayBookings(ctx) {
		if b.TableID == "" {
			continue
		}
		reservationByTable[b.TableID] = &domain.TableReservation{
			CustomerName: b.CustomerName,
			GuestCount:   b.GuestCount,
		}
	}

	build := func(ids []int) []domain.Table {
		zone := make([]domain.Table, 0, len(ids))
		for _, id := range ids {
			table := domain.NewTable(id)
			if waiter, occupied := active[id]; occupied {
				table.Occupied = true
				table.Waiter = waiter
			}
			table.Reservation = reservationByTable[strconv.Itoa(id)]
			zone = append(zone, table)
		}
		return zone
	}

	return domain.FloorPlan{
		Hall:    build(s.cfg.Tables.Hall),
		Terrace: build(s.cfg.Tables.Terrace),
	}
}

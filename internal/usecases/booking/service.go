package booking

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/utils"
)

// BookingService lists today's reservations for the dashboard. Like
// every dashboard-facing operation it never fails: upstream problems
// degrade to an empty list.
type BookingService interface {
	TodayBookings(ctx context.Context) []domain.Booking
}

type Service struct {
	choice choice.ChoiceIntegrator
	now    func() time.Time
}

func NewService(choiceService choice.ChoiceIntegrator) *Service {
	return &Service{
		choice: choiceService,
		now:    time.Now,
	}
}

// WithClock injects a clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// TodayBookings returns today's bookings sorted by time, each tagged
// with whether it falls in the current hour.
func (s *Service) TodayBookings(ctx context.Context) []domain.Booking {
	now := s.now()
	from, till := utils.DayBounds(now)

	bookings, err := s.choice.BookingsBetween(ctx, from, till)
	if err != nil {
		logrus.WithError(err).Warn("booking: listing bookings failed, serving empty list")
		return []domain.Booking{}
	}

	for i := range bookings {
		startsAt := bookings[i].StartsAt
		bookings[i].IsCurrentHour = startsAt != nil &&
			startsAt.Year() == now.Year() &&
			startsAt.YearDay() == now.YearDay() &&
			startsAt.Hour() == now.Hour()
	}

	// Bookings without a parseable time sort last.
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i].StartsAt, bookings[j].StartsAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	return bookings
}

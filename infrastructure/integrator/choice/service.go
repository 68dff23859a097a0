package choice

import (
	"context"
	"time"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice/choiceclient"
	choicedomain "github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

// displayStatuses maps raw booking statuses to the labels the
// dashboard renders.
var displayStatuses = map[domain.BookingStatus]string{
	domain.BookingCreated:            "Очікує підтвердження",
	domain.BookingConfirmed:          "Підтверджено",
	domain.BookingExternalCancelling: "Скасування (зовнішнє)",
	domain.BookingCancelled:          "Скасовано",
	domain.BookingInProgress:         "У закладі",
	domain.BookingNotCame:            "Не зʼявився",
	domain.BookingCompleted:          "Завершено",
}

// ChoiceIntegrator lists reservations for a time window, shaped for
// display. A missing credential yields an empty list without network
// I/O.
type ChoiceIntegrator interface {
	BookingsBetween(ctx context.Context, from, till time.Time) ([]domain.Booking, error)
	HasToken() bool
}

type ChoiceService struct {
	cfg    *config.Config
	Client choiceclient.Client
}

func New(cfg *config.Config, client choiceclient.Client) ChoiceIntegrator {
	return &ChoiceService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ChoiceService) HasToken() bool {
	return s.cfg.Choice.Token != ""
}

func (s *ChoiceService) BookingsBetween(ctx context.Context, from, till time.Time) ([]domain.Booking, error) {
	if !s.HasToken() {
		return []domain.Booking{}, nil
	}

	entries, err := s.Client.ListBookings(ctx, choiceclient.ListBookingsParams{
		From: from,
		Till: till,
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(entries))
	for _, entry := range entries {
		bookings = append(bookings, toDomain(entry, from.Location()))
	}

	return bookings, nil
}

func toDomain(entry choicedomain.BookingEntry, loc *time.Location) domain.Booking {
	booking := domain.Booking{
		Number:       entry.Num,
		Time:         "—",
		CustomerName: orDash(entry.Customer.Name),
		GuestCount:   entry.PersonCount,
		Comment:      entry.Comment,
		Waiter:       orDash(entry.User.Name),
		Status:       domain.BookingStatus(entry.Status),
		Deposit:      entry.Deposit.Amount,
	}

	if booking.Comment == "" {
		booking.Comment = entry.Note
	}

	if entry.DateTime != "" {
		if startsAt, err := time.Parse(time.RFC3339, entry.DateTime); err == nil {
			local := startsAt.In(loc)
			booking.StartsAt = &local
			booking.Time = local.Format("15:04")
		} else if len(entry.DateTime) >= 16 {
			// Unparseable timestamp still renders its raw prefix.
			booking.Time = entry.DateTime[:16]
		}
	}

	booking.DisplayStatus = string(booking.Status)
	if display, ok := displayStatuses[booking.Status]; ok {
		booking.DisplayStatus = display
	}

	if len(entry.LocationPoints) > 0 {
		booking.TableID = entry.LocationPoints[0]
	}

	return booking
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

package domain

import "time"

// BookingStatus is the raw status reported by the booking platform.
type BookingStatus string

const (
	BookingCreated            BookingStatus = "CREATED"
	BookingConfirmed          BookingStatus = "CONFIRMED"
	BookingExternalCancelling BookingStatus = "EXTERNAL_CANCELLING"
	BookingCancelled          BookingStatus = "CANCELLED"
	BookingInProgress         BookingStatus = "IN_PROGRESS"
	BookingNotCame            BookingStatus = "NOT_CAME"
	BookingCompleted          BookingStatus = "COMPLETED"
)

// Booking is one reservation, shaped for display.
type Booking struct {
	Number        int           `json:"num"`
	Time          string        `json:"time"`
	StartsAt      *time.Time    `json:"-"`
	CustomerName  string        `json:"name"`
	GuestCount    int           `json:"people"`
	Comment       string        `json:"comment"`
	Waiter        string        `json:"waiter"`
	Status        BookingStatus `json:"-"`
	DisplayStatus string        `json:"status"`
	Deposit       float64       `json:"deposit"`
	TableID       string        `json:"table"`
	IsCurrentHour bool          `json:"is_current_hour"`
}

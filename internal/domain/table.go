package domain

import "fmt"

// TableReservation is the booking shown on an occupied or reserved
// table tile.
type TableReservation struct {
	CustomerName string `json:"name"`
	GuestCount   int    `json:"people"`
}

// Table is one table tile of the occupancy view.
type Table struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Waiter      string            `json:"waiter"`
	Occupied    bool              `json:"occupied"`
	Reservation *TableReservation `json:"reservation"`
}

// NewTable builds a free table tile with the display name used by the
// dashboard.
func NewTable(id int) Table {
	return Table{
		ID:     id,
		Name:   fmt.Sprintf("Стіл %d", id),
		Waiter: "—",
	}
}

// FloorPlan is the occupancy of both dining zones.
type FloorPlan struct {
	Hall    []Table `json:"hall"`
	Terrace []Table `json:"terrace"`
}

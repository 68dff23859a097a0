package domain

import "time"

// LineItem is one sold product inside a transaction, already converted
// to major currency units. Derived from the wire format, never stored.
type LineItem struct {
	ProductID  int
	Quantity   int
	SaleAmount float64
}

// Transaction is one POS check. ClosedAt is zero when the upstream
// close timestamp was absent or unparseable.
type Transaction struct {
	ID       int
	Status   TransactionStatus
	ClosedAt time.Time
	Items    []LineItem
}

// TransactionStatus mirrors the POS status codes.
type TransactionStatus string

const (
	TransactionOpen    TransactionStatus = "1"
	TransactionClosed  TransactionStatus = "2"
	TransactionDeleted TransactionStatus = "3"
)

// TransactionsPage is one page of the paginated transactions endpoint
// together with the server-reported pagination counters that decide
// when the fetch loop terminates.
type TransactionsPage struct {
	Transactions []Transaction
	TotalCount   int
	PerPage      int
}

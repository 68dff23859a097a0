package posterdomain

import "encoding/json"

// TransactionProduct is one raw line item. Num may carry a fractional
// part ("3.0"); PayedSum is the sale amount in minor units.
type TransactionProduct struct {
	ProductID json.Number `json:"product_id"`
	Num       json.Number `json:"num"`
	PayedSum  json.Number `json:"payed_sum"`
}

// TransactionEntry is one raw POS check.
type TransactionEntry struct {
	TransactionID json.Number          `json:"transaction_id"`
	Status        json.Number          `json:"status"`
	DateClose     string               `json:"date_close"`
	Products      []TransactionProduct `json:"products"`
}

// TransactionsPageInfo carries the server-side page size. The loop
// over pages terminates on per_page * pages >= count.
type TransactionsPageInfo struct {
	PerPage json.Number `json:"per_page"`
}

// TransactionsBody is the payload inside the transactions envelope.
type TransactionsBody struct {
	Count json.Number          `json:"count"`
	Page  TransactionsPageInfo `json:"page"`
	Data  []TransactionEntry   `json:"data"`
}

// TransactionsResponse is the transactions.getTransactions envelope.
type TransactionsResponse struct {
	Response TransactionsBody `json:"response"`
}

// DashTransaction is one row of dash.getTransactions, used for the
// live table-occupancy view. Name is the waiter who opened the check.
type DashTransaction struct {
	Status    json.Number `json:"status"`
	TableName json.Number `json:"table_name"`
	Name      string      `json:"name"`
}

// DashTransactionsResponse is the dash.getTransactions envelope.
type DashTransactionsResponse struct {
	Response []DashTransaction `json:"response"`
}

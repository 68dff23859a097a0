package posterdomain

import "encoding/json"

// ItemKind selects which part of the menu catalog a page request
// covers. Both kinds carry sellable products.
type ItemKind string

const (
	KindProducts     ItemKind = "products"
	KindBatchTickets ItemKind = "batchtickets"
)

// Kinds lists every catalog kind a full refresh paginates through.
var Kinds = []ItemKind{KindProducts, KindBatchTickets}

// ProductEntry is one raw catalog entry. Poster serializes numbers as
// strings, so fields stay json.Number until the integrator parses
// them; Cost is in minor units.
type ProductEntry struct {
	ProductID  json.Number `json:"product_id"`
	CategoryID json.Number `json:"menu_category_id"`
	Cost       json.Number `json:"cost"`
}

// ProductsResponse is the menu.getProducts envelope.
type ProductsResponse struct {
	Response []ProductEntry `json:"response"`
}

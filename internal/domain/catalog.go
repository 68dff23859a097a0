package domain

import "time"

// Product is one entry of the POS menu catalog. UnitCost is already
// scaled to major currency units.
type Product struct {
	ID         int     `json:"id"`
	CategoryID int     `json:"category_id"`
	UnitCost   float64 `json:"unit_cost"`
}

// CatalogSnapshot maps product id to product. It is replaced wholesale
// on refresh and never mutated in place, so readers may hold it across
// an entire aggregation run.
type CatalogSnapshot struct {
	Products   map[int]Product `json:"products"`
	CapturedAt time.Time       `json:"captured_at"`
}

func (s CatalogSnapshot) Empty() bool {
	return len(s.Products) == 0
}

// Lookup returns the product for id, reporting whether the catalog
// knows it. Unknown products are excluded from every aggregate.
func (s CatalogSnapshot) Lookup(id int) (Product, bool) {
	p, ok := s.Products[id]
	return p, ok
}

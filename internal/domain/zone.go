package domain

// Zone is the kitchen/bar station a sold product is routed to,
// derived from its catalog category.
type Zone string

const (
	ZoneHot          Zone = "hot"
	ZoneCold         Zone = "cold"
	ZoneBar          Zone = "bar"
	ZoneUnclassified Zone = "unclassified"
)

// Zones lists the three operational zones, in display order.
var Zones = []Zone{ZoneHot, ZoneCold, ZoneBar}

// ZoneTotals accumulates what one zone sold over one day.
// CostAmount greater than SaleAmount is possible with bad upstream
// cost data and is served as-is.
type ZoneTotals struct {
	Zone       Zone    `json:"zone"`
	UnitCount  int     `json:"unit_count"`
	SaleAmount float64 `json:"sale_amount"`
	CostAmount float64 `json:"cost_amount"`
}

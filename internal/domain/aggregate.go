package domain

import "time"

// HourlySeries is the per-hour cumulative unit counts for the zones
// charted hourly. Labels[i] names the hour of Hot[i]/Cold[i]. Each
// series is monotonic non-decreasing: the value at an hour is the
// running total from the start of the service window.
type HourlySeries struct {
	Labels []string `json:"labels"`
	Hot    []int    `json:"hot"`
	Cold   []int    `json:"cold"`
}

// DayAggregate is everything derived from one calendar day of
// transactions: totals per zone plus the cumulative hourly series.
type DayAggregate struct {
	Date   time.Time           `json:"date"`
	Totals map[Zone]ZoneTotals `json:"totals"`
	Hourly HourlySeries        `json:"hourly"`
}

// UnitSum is the total units sold across all three zones.
func (d DayAggregate) UnitSum() int {
	sum := 0
	for _, t := range d.Totals {
		sum += t.UnitCount
	}
	return sum
}

// FoodCost holds cost-of-goods percentages per zone and overall.
type FoodCost struct {
	ByZone  map[Zone]float64 `json:"by_zone"`
	Overall float64          `json:"overall"`
}

// AggregateSnapshot is an immutable, fully-formed aggregate captured at
// one instant and served unchanged until the next refresh. It is only
// ever replaced as a whole.
type AggregateSnapshot struct {
	ID            string           `json:"id"`
	Today         DayAggregate     `json:"today"`
	ComparisonDay DayAggregate     `json:"comparison_day"`
	Shares        map[Zone]float64 `json:"shares"`
	FoodCost      FoodCost         `json:"food_cost"`
	Weather       Weather          `json:"weather"`
	CapturedAt    time.Time        `json:"captured_at"`
}

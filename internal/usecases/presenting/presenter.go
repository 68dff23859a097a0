package presenting

import (
	"strconv"
	"time"

	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

// DayView is one day of zone totals plus its hourly series in the wire
// shape the dashboard charts.
type DayView struct {
	Date   string                            `json:"date"`
	Totals map[domain.Zone]domain.ZoneTotals `json:"totals"`
	Hourly domain.HourlySeries               `json:"hourly"`
}

// SalesView is the /api/sales payload.
type SalesView struct {
	SnapshotID    string                  `json:"snapshot_id"`
	CapturedAt    time.Time               `json:"captured_at"`
	Today         DayView                 `json:"today"`
	ComparisonDay DayView                 `json:"comparison_day"`
	Shares        map[domain.Zone]float64 `json:"share"`
	FoodCost      domain.FoodCost         `json:"food_cost"`
	Weather       domain.Weather          `json:"weather"`
}

// PresentSales shapes a snapshot for the dashboard. Today's cumulative
// series is truncated to the current hour so a partial day is not
// visually confused with a complete one; the comparison day is always
// served in full.
func PresentSales(snapshot *domain.AggregateSnapshot, now time.Time) SalesView {
	if snapshot == nil {
		return SalesView{Weather: domain.WeatherUnavailable()}
	}

	return SalesView{
		SnapshotID: snapshot.ID,
		CapturedAt: snapshot.CapturedAt,
		Today: DayView{
			Date:   snapshot.Today.Date.Format(time.DateOnly),
			Totals: snapshot.Today.Totals,
			Hourly: truncateToHour(snapshot.Today.Hourly, now.Hour()),
		},
		ComparisonDay: DayView{
			Date:   snapshot.ComparisonDay.Date.Format(time.DateOnly),
			Totals: snapshot.ComparisonDay.Totals,
			Hourly: snapshot.ComparisonDay.Hourly,
		},
		Shares:   snapshot.Shares,
		FoodCost: snapshot.FoodCost,
		Weather:  snapshot.Weather,
	}
}

// truncateToHour keeps only the series entries up to and including the
// given hour of day.
func truncateToHour(series domain.HourlySeries, hour int) domain.HourlySeries {
	cut := len(series.Labels)
	for i, label := range series.Labels {
		labelHour, err := strconv.Atoi(label[:2])
		if err != nil || labelHour > hour {
			cut = i
			break
		}
	}

	return domain.HourlySeries{
		Labels: series.Labels[:cut],
		Hot:    series.Hot[:cut],
		Cold:   series.Cold[:cut],
	}
}

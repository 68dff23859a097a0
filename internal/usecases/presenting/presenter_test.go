package presenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

func testSeries() domain.HourlySeries {
	return domain.HourlySeries{
		Labels: []string{"10:00", "11:00", "12:00", "13:00", "14:00"},
		Hot:    []int{0, 2, 5, 5, 7},
		Cold:   []int{1, 1, 2, 4, 4},
	}
}

func testSnapshot() *domain.AggregateSnapshot {
	return &domain.AggregateSnapshot{
		ID: "abc12345",
		Today: domain.DayAggregate{
			Date:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Hourly: testSeries(),
		},
		ComparisonDay: domain.DayAggregate{
			Date:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			Hourly: testSeries(),
		},
		Weather:    domain.Weather{Temperature: "21°C", Description: "Ясно"},
		CapturedAt: time.Date(2025, 6, 15, 12, 0, 30, 0, time.UTC),
	}
}

func TestPresentSales_TruncatesTodayToCurrentHour(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 40, 0, 0, time.UTC)

	view := PresentSales(testSnapshot(), now)

	// Today's series stops at the 12:00 bucket; the comparison day is
	// served in full.
	assert.Equal(t, []string{"10:00", "11:00", "12:00"}, view.Today.Hourly.Labels)
	assert.Equal(t, []int{0, 2, 5}, view.Today.Hourly.Hot)
	assert.Equal(t, []int{1, 1, 2}, view.Today.Hourly.Cold)
	assert.Len(t, view.ComparisonDay.Hourly.Labels, 5)

	assert.Equal(t, "2025-06-15", view.Today.Date)
	assert.Equal(t, "2025-06-08", view.ComparisonDay.Date)
	assert.Equal(t, "abc12345", view.SnapshotID)
}

func TestPresentSales_BeforeServiceWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	view := PresentSales(testSnapshot(), now)

	assert.Empty(t, view.Today.Hourly.Labels)
	assert.Empty(t, view.Today.Hourly.Hot)
}

func TestPresentSales_AfterServiceWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	view := PresentSales(testSnapshot(), now)

	assert.Len(t, view.Today.Hourly.Labels, 5)
}

func TestPresentSales_NilSnapshot(t *testing.T) {
	view := PresentSales(nil, time.Now())

	assert.Empty(t, view.SnapshotID)
	assert.Equal(t, domain.WeatherUnavailable(), view.Weather)
}

package utils

import "time"

// DayBounds returns the start of day and the start of the next day for
// d, in d's location.
func DayBounds(d time.Time) (time.Time, time.Time) {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return start, start.AddDate(0, 0, 1)
}

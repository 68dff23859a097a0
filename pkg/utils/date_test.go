package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	assert.NoError(t, err)

	d := time.Date(2025, 6, 15, 14, 30, 45, 0, kyiv)
	start, end := DayBounds(d)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, kyiv), start)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, kyiv), end)
	assert.Equal(t, kyiv, start.Location())
}

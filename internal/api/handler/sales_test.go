package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poka-net3/kitchen-dashboard-api/internal/api/handler/router"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/presenting"
)

func TestGetSales(t *testing.T) {
	snapshot := &domain.AggregateSnapshot{
		ID:         "abc12345",
		CapturedAt: time.Now(),
		Today: domain.DayAggregate{
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Weather: domain.Weather{Temperature: "21°C", Description: "Ясно"},
	}
	rt := router.New(router.WithRoutes(Sales(&stubInsighter{snapshot: snapshot})...))

	for _, path := range []string{"/api/sales", "/api/data"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var view presenting.SalesView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "abc12345", view.SnapshotID)
		assert.Equal(t, "2025-06-15", view.Today.Date)
		assert.Equal(t, "21°C", view.Weather.Temperature)
	}
}

func TestGetSales_EmptySnapshotStillServes(t *testing.T) {
	rt := router.New(router.WithRoutes(Sales(&stubInsighter{})...))

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view presenting.SalesView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "Н/Д", view.Weather.Temperature)
}

package handler

import (
	"net/http"

	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/tables"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/log"
)

// GetTables serves the live floor plan. Computed per request, not
// cached.
func GetTables(service tables.TableService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		plan := service.FloorPlan(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logger.WithError(err).Error("tables: failed to encode response")
		}
	})
}

package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/presenting"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSales serves the aggregate snapshot the dashboard polls. This
// endpoint never returns a failure status: upstream problems already
// degraded to partial or empty data inside the aggregate cache.
func GetSales(service aggregating.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := service.Aggregate(r.Context())
		view := presenting.PresentSales(snapshot, time.Now())

		if snapshot != nil {
			logger.WithFields(log.Fields{
				"snapshot_id": snapshot.ID,
				"captured_at": snapshot.CapturedAt.Format(time.RFC3339),
			}).Debug("sales: serving snapshot")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
		}
	})
}

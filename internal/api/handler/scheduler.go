package handler

import (
	"net/http"

	"github.com/poka-net3/kitchen-dashboard-api/pkg/log"
)

// PrewarmScheduler is the slice of the prewarm scheduler the
// operational endpoints expose.
type PrewarmScheduler interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// RunPrewarm kicks off a manual cache prewarm in the background. The
// response only acknowledges the trigger; progress is visible on the
// status endpoint.
func RunPrewarm(scheduler PrewarmScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("scheduler: manual prewarm requested")

		scheduler.TriggerManualRun()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "cache prewarm triggered",
		}); err != nil {
			logger.WithError(err).Error("scheduler: failed to encode response")
		}
	})
}

// GetSchedulerStatus reports the prewarm scheduler configuration and
// the timestamps of its last run.
func GetSchedulerStatus(scheduler PrewarmScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"cache_prewarm": scheduler.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("scheduler: failed to encode response")
		}
	})
}

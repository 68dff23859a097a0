package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/cataloging"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/apiErrors"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/log"
)

// CacheServices bundles the caches the operational refresh endpoint
// can force.
type CacheServices struct {
	Catalogs   cataloging.Cataloger
	Aggregates aggregating.Insighter
}

// RefreshCache forces a refresh of one cache tier, bypassing its TTL.
func RefreshCache(services CacheServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cacheType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("cache", cacheType).Info("cache: forced refresh requested")

		switch cacheType {
		case "catalog":
			snapshot, out := services.Catalogs.ForceRefresh(r.Context())
			if err := out.Err(); err != nil {
				logger.WithError(err).Warn("cache: catalog refresh degraded")
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(map[string]any{
				"cache":    cacheType,
				"status":   out.Status,
				"products": len(snapshot.Products),
			}); err != nil {
				logger.WithError(err).Error("cache: failed to encode response")
			}

		case "aggregate":
			snapshot := services.Aggregates.ForceRefresh(r.Context())

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(map[string]any{
				"cache":       cacheType,
				"snapshot_id": snapshot.ID,
				"captured_at": snapshot.CapturedAt,
			}); err != nil {
				logger.WithError(err).Error("cache: failed to encode response")
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownCache, "unknown cache type: "+cacheType, nil)
		}
	})
}

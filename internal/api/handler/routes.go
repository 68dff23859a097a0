package handler

import (
	"net/http"

	"github.com/poka-net3/kitchen-dashboard-api/internal/api/handler/router"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/booking"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/tables"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Sales returns the dashboard aggregate routes. /api/data is the
// legacy alias older dashboard builds still poll.
func Sales(service aggregating.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/api/data",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
	}
}

func Tables(service tables.TableService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/tables",
			Method:  http.MethodGet,
			Handler: GetTables(service),
		},
	}
}

// Reservations returns the booking routes; /api/bookings is an alias.
func Reservations(service booking.BookingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/reservations",
			Method:  http.MethodGet,
			Handler: GetReservations(service),
		},
		{
			Path:    "/api/bookings",
			Method:  http.MethodGet,
			Handler: GetReservations(service),
		},
	}
}

func Caches(services CacheServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/:type/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(services),
		},
	}
}

func Schedulers(scheduler PrewarmScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scheduler/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(scheduler),
		},
		{
			Path:    "/v1/scheduler/prewarm/run",
			Method:  http.MethodPost,
			Handler: RunPrewarm(scheduler),
		},
	}
}

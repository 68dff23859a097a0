package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/internal/api/handler"
	"github.com/poka-net3/kitchen-dashboard-api/internal/api/handler/router"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/booking"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/cataloging"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/tables"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService aggregating.Insighter,
	catalogService cataloging.Cataloger,
	tableService tables.TableService,
	bookingService booking.BookingService,
	prewarmScheduler handler.PrewarmScheduler,
) (*Server, error) {
	cacheServices := handler.CacheServices{
		Catalogs:   catalogService,
		Aggregates: insightService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(insightService)...),
		router.WithRoutes(handler.Tables(tableService)...),
		router.WithRoutes(handler.Reservations(bookingService)...),
		router.WithRoutes(handler.Caches(cacheServices)...),
		router.WithRoutes(handler.Schedulers(prewarmScheduler)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server execution error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

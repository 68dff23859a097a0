package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/choice/choiceclient"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/openweather"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/openweather/weatherclient"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster"
	"github.com/poka-net3/kitchen-dashboard-api/infrastructure/integrator/poster/posterclient"
	"github.com/poka-net3/kitchen-dashboard-api/internal/api"
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/scheduler"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/booking"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/cataloging"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/classifying"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/tables"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	posterClient := posterclient.NewClient(cfg)
	posterIntegrator := poster.New(cfg, posterClient)

	choiceClient := choiceclient.NewClient(cfg)
	choiceIntegrator := choice.New(cfg, choiceClient)

	weatherClient := weatherclient.NewClient(cfg)
	weatherIntegrator := openweather.New(cfg, weatherClient)

	classifier := classifying.NewFromConfig(cfg)

	catalogService := cataloging.NewService(cfg, posterIntegrator)
	aggregator := aggregating.NewAggregator(cfg, posterIntegrator, classifier)
	insightService := aggregating.NewService(cfg, catalogService, aggregator, weatherIntegrator)

	bookingService := booking.NewService(choiceIntegrator)
	tableService := tables.NewService(cfg, posterIntegrator, bookingService)

	cachePrewarmService := scheduler.NewCachePrewarmService(catalogService, insightService, cfg)
	if err := cachePrewarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start cache prewarm scheduler")
	}

	server, err := api.New(
		cfg,
		insightService,
		catalogService,
		tableService,
		bookingService,
		cachePrewarmService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

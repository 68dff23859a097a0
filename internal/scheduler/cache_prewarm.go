package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/aggregating"
	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/cataloging"
)

// CachePrewarmConfig holds the scheduling knobs for the prewarm job.
type CachePrewarmConfig struct {
	CronSchedule string
	Enabled      bool
}

// CachePrewarmService periodically forces a refresh of the catalog and
// aggregate caches so the first request after an idle period does not
// pay the upstream round trips. The service stays correct without it;
// every cache refreshes on demand anyway.
type CachePrewarmService struct {
	scheduler         *gocron.Scheduler
	config            CachePrewarmConfig
	catalogService    cataloging.Cataloger
	insightService    aggregating.Insighter
	prewarmRunning    bool
	prewarmMutex      sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewCachePrewarmService creates the prewarm scheduler from the global config.
func NewCachePrewarmService(
	catalogService cataloging.Cataloger,
	insightService aggregating.Insighter,
	appConfig *config.Config,
) *CachePrewarmService {
	prewarmConfig := CachePrewarmConfig{
		CronSchedule: appConfig.CachePrewarm.CronSchedule,
		Enabled:      appConfig.CachePrewarm.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": prewarmConfig.CronSchedule,
		"enabled":       prewarmConfig.Enabled,
	}).Info("Cache prewarm scheduler configuration loaded")

	return &CachePrewarmService{
		scheduler:      scheduler,
		config:         prewarmConfig,
		catalogService: catalogService,
		insightService: insightService,
		prewarmRunning: false,
	}
}

// Start schedules the prewarm job and runs the scheduler until the
// context is cancelled.
func (s *CachePrewarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cache prewarm disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting cache prewarm scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.prewarmCaches(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cache prewarm: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping cache prewarm scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CachePrewarmService) prewarmCaches(ctx context.Context) {
	s.prewarmMutex.Lock()
	if s.prewarmRunning {
		s.prewarmMutex.Unlock()
		logrus.Info("Cache prewarm already in progress, skipping")
		return
	}
	startTime := time.Now()
	s.prewarmRunning = true
	s.lastRunStartedAt = startTime
	s.prewarmMutex.Unlock()

	defer func() {
		s.prewarmMutex.Lock()
		s.prewarmRunning = false
		s.lastRunFinishedAt = time.Now()
		s.prewarmMutex.Unlock()
	}()

	catalog, result := s.catalogService.ForceRefresh(ctx)
	if err := result.Err(); err != nil {
		logrus.WithError(err).Warn("Catalog prewarm finished with errors")
	}

	snapshot := s.insightService.ForceRefresh(ctx)

	fields := logrus.Fields{
		"duration": time.Since(startTime).String(),
		"products": len(catalog.Products),
	}
	if snapshot != nil {
		fields["snapshot_id"] = snapshot.ID
	}
	logrus.WithFields(fields).Info("Cache prewarm completed")
}

// TriggerManualRun kicks off a prewarm outside the schedule. The run
// is detached from the caller: a closed request connection must not
// abort a refresh already talking to upstream.
func (s *CachePrewarmService) TriggerManualRun() {
	s.prewarmMutex.Lock()
	if s.prewarmRunning {
		s.prewarmMutex.Unlock()
		logrus.Info("Cache prewarm already in progress, ignoring manual trigger")
		return
	}
	s.prewarmMutex.Unlock()

	logrus.Info("Starting manual cache prewarm")
	go s.prewarmCaches(context.Background())
}

// GetStatus reports the scheduler state.
func (s *CachePrewarmService) GetStatus() map[string]any {
	s.prewarmMutex.Lock()
	defer s.prewarmMutex.Unlock()

	return map[string]any{
		"prewarm_enabled":      s.config.Enabled,
		"prewarm_cron":         s.config.CronSchedule,
		"prewarm_running":      s.prewarmRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}

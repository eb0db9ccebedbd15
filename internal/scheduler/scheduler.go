package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/config"
	"github.com/royalbikes/showroom-backend/internal/service/dashboard"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// showroom's configured timezone so the nightly summary lands after
// closing time, not after midnight UTC.
func NewScheduler(cfg config.Config, dashboardSvc *dashboard.Service, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Summary.Timezone)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		dashboardSvc: dashboardSvc,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Summary.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Summary.CronSchedule, s.runDailySummary)
	if err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailySummary() {
	s.logger.Info("building daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.dashboardSvc.BuildDailySummary(ctx); err != nil {
		s.logger.Error("failed to build daily summary", zap.Error(err))
	}
}

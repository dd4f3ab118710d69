package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler wraps cron-based background jobs for the watch mode.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func New(loc *time.Location, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logger: logger,
	}
}

// AtMidnight registers a job that fires at local midnight, right when the
// daily archival window rolls over.
func (s *Scheduler) AtMidnight(job func()) (cron.EntryID, error) {
	return s.cron.AddFunc("0 0 * * *", job)
}

// Every registers a periodic job.
func (s *Scheduler) Every(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	return s.cron.AddFunc(spec, job)
}

func (s *Scheduler) Start() {
	s.logger.Debug("scheduler started")
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Debug("scheduler stopped")
}

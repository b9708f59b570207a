package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// Start runs the cron loop until ctx is cancelled. Ticks that land
// while a run is still in flight are skipped, not queued.
func (s *implScheduler) Start(ctx context.Context) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cronLogAdapter{ctx: ctx, logger: s.logger})),
	)

	c.Schedule(s.sched, cron.FuncJob(func() {
		s.logger.Info(ctx, "Scheduled run starting")
		if err := s.run(ctx); err != nil {
			s.logger.Error(ctx, "Scheduled run failed: %v", err)
		}
	}))

	c.Start()
	s.logger.Info(ctx, "Scheduler started: %q, next run at %s",
		s.spec, s.sched.Next(time.Now().UTC()).Format(time.RFC3339))

	<-ctx.Done()
	s.logger.Info(ctx, "Waiting for the in-flight run to complete...")
	<-c.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// cronLogAdapter lets the cron runner report through our logger.
type cronLogAdapter struct {
	ctx    context.Context
	logger logger.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(a.ctx, "cron: %s %v", msg, keysAndValues)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error(a.ctx, "cron: %s: %v %v", msg, err, keysAndValues)
}

package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

type implScheduler struct {
	spec   string
	sched  cron.Schedule
	run    RunFunc
	logger logger.Logger
}

// New creates a Scheduler for the given cron expression. Standard five
// field expressions and descriptors like "@daily" are accepted.
func New(spec string, run RunFunc, log logger.Logger) (Scheduler, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron expression %q: %w", spec, err)
	}

	return &implScheduler{
		spec:   spec,
		sched:  sched,
		run:    run,
		logger: log,
	}, nil
}

package scheduler

import "context"

// Scheduler reruns the pipeline on a fixed cron cadence.
type Scheduler interface {
	Start(ctx context.Context) error
}

// RunFunc triggers one full pipeline run.
type RunFunc func(ctx context.Context) error

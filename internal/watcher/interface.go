package watcher

import "context"

// Watcher monitors the transcript directory and reruns the pipeline
// when its contents change.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RunFunc triggers one full pipeline run.
type RunFunc func(ctx context.Context) error

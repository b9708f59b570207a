package store

import (
	"context"
	"time"
)

// Processed is one normalized source document from the processed
// partition.
type Processed struct {
	Day     string
	Content string
}

// Daily is one persisted daily summary.
type Daily struct {
	Day     string
	Content string
}

// Store is the identity-addressed file layout holding pipeline artifacts
// in four partitions: processed source documents, daily summaries, the
// master summary and final reports.
type Store interface {
	EnsureLayout() error
	SaveProcessed(ctx context.Context, day, content string) error
	LookupProcessed(ctx context.Context, day string) (Processed, bool, error)
	ClearProcessed(ctx context.Context) error
	SaveDaily(ctx context.Context, day, content string) error
	LoadDailies(ctx context.Context) ([]Daily, error)
	SaveMaster(ctx context.Context, content string) error
	ReportPath(now time.Time) string
}

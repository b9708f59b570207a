package pipeline

import "context"

// Options selects what a run regenerates. The zero value is a full run:
// wipe the processed partition, renormalize every transcript, regenerate
// every daily summary, then synthesize the report.
type Options struct {
	// Days restricts daily regeneration to the days matching these
	// selectors. Other persisted daily summaries are left untouched but
	// still feed the master synthesis.
	Days []string
	// SkipDaily skips the map step entirely and synthesizes from the
	// persisted daily summaries as they are.
	SkipDaily bool
}

// Result reports what a run produced.
type Result struct {
	RunID      string
	Days       []string
	DailyCount int
	ReportPath string
	Warnings   []string
}

// Pipeline turns raw transcripts into a rendered weekly report.
type Pipeline interface {
	Run(ctx context.Context, opts Options) (*Result, error)
}

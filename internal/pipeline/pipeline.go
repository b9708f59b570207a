package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/renderer"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

// Run executes the staged pipeline. The map step (daily summaries) runs
// only for the selected documents; a day that fails there is dropped
// with a warning and the run continues. The reduce step (master
// synthesis, framing, render) is always fully redone over the complete
// current set of daily summaries and its failures are terminal.
func (p *implPipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	started := time.Now()

	p.logger.Info(ctx, "Pipeline started")
	p.logRoutes(ctx)

	if err := p.store.EnsureLayout(); err != nil {
		return nil, fmt.Errorf("prepare workspace: %w", err)
	}

	result := &Result{RunID: runID}

	if opts.SkipDaily {
		p.logger.Info(ctx, "Skipping daily summaries, synthesizing from persisted artifacts")
	} else {
		docs, err := p.selectDocuments(ctx, opts)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			if strings.TrimSpace(doc.Content) == "" {
				p.logger.Warn(ctx, "No usable content for day %q, skipping", doc.Day)
				continue
			}

			summary, err := p.summarizeDocument(ctx, doc)
			if err != nil {
				if errors.Is(err, ErrEmptyContent) {
					p.logger.Warn(ctx, "Day %q produced no content, skipping", doc.Day)
					continue
				}
				if errors.Is(err, ErrGeneration) && ctx.Err() == nil {
					p.logger.Warn(ctx, "Day %q summarization failed, continuing without it: %v", doc.Day, err)
					result.Warnings = append(result.Warnings, err.Error())
					continue
				}
				return nil, err
			}

			if err := p.store.SaveDaily(ctx, doc.Day, summary); err != nil {
				return nil, fmt.Errorf("day %q: %w", doc.Day, err)
			}
			result.Days = append(result.Days, doc.Day)
		}
	}

	master, count, err := p.synthesizeMaster(ctx)
	if err != nil {
		return nil, err
	}
	result.DailyCount = count

	if err := p.store.SaveMaster(ctx, master); err != nil {
		return nil, err
	}

	opening, closing, warnings := p.generateFraming(ctx, master)
	result.Warnings = append(result.Warnings, warnings...)

	now := p.now()
	outPath := p.store.ReportPath(now)
	report := renderer.Report{
		Title:   p.cfg.Report.Title,
		Date:    now,
		Opening: opening,
		Body:    master,
		Closing: closing,
		Author:  p.cfg.Report.Author,
	}
	if err := p.renderer.Render(ctx, report, outPath); err != nil {
		return nil, &StageError{Stage: "render", Kind: ErrRender, Err: err}
	}
	result.ReportPath = outPath

	p.logger.Info(ctx, "Pipeline finished in %s: %s",
		time.Since(started).Round(time.Millisecond), outPath)
	return result, nil
}

// selectDocuments resolves which source documents the map step will
// consume. A full run renormalizes everything; a day-scoped run reuses
// processed artifacts and falls back to the raw transcripts.
func (p *implPipeline) selectDocuments(ctx context.Context, opts Options) ([]transcript.Document, error) {
	if len(opts.Days) == 0 {
		return p.discoverAll(ctx)
	}
	return p.collectDays(ctx, opts.Days)
}

func (p *implPipeline) discoverAll(ctx context.Context) ([]transcript.Document, error) {
	// The processed partition tracks the current raw inputs, start clean.
	if err := p.store.ClearProcessed(ctx); err != nil {
		return nil, fmt.Errorf("clear processed partition: %w", err)
	}

	docs, err := p.loader.Discover(ctx)
	if err != nil {
		return nil, &StageError{Stage: "load", Kind: ErrLoad, Err: err}
	}
	if len(docs) == 0 {
		return nil, &StageError{Stage: "load", Kind: ErrLoad,
			Err: fmt.Errorf("no transcripts found in %s", p.cfg.Workspace.Transcripts)}
	}

	for _, doc := range docs {
		if strings.TrimSpace(doc.Content) == "" {
			continue
		}
		if err := p.store.SaveProcessed(ctx, doc.Day, doc.Content); err != nil {
			return nil, fmt.Errorf("day %q: %w", doc.Day, err)
		}
	}

	return docs, nil
}

func (p *implPipeline) collectDays(ctx context.Context, days []string) ([]transcript.Document, error) {
	var docs []transcript.Document
	seen := make(map[string]bool)

	for _, day := range days {
		proc, found, err := p.store.LookupProcessed(ctx, day)
		if err != nil {
			return nil, &StageError{Stage: "load", Day: day, Kind: ErrLoad, Err: err}
		}
		if found {
			if seen[proc.Day] {
				continue
			}
			seen[proc.Day] = true
			p.logger.Info(ctx, "Using processed transcript for day %q", proc.Day)
			docs = append(docs, transcript.Document{Day: proc.Day, Content: proc.Content})
			continue
		}

		doc, found, err := p.loader.FindByDay(ctx, day)
		if err != nil {
			return nil, &StageError{Stage: "load", Day: day, Kind: ErrLoad, Err: err}
		}
		if !found {
			p.logger.Warn(ctx, "No transcript found for day %q, skipping", day)
			continue
		}
		if seen[doc.Day] {
			continue
		}
		seen[doc.Day] = true

		p.logger.Info(ctx, "Renormalizing raw transcript for day %q", doc.Day)
		if strings.TrimSpace(doc.Content) != "" {
			if err := p.store.SaveProcessed(ctx, doc.Day, doc.Content); err != nil {
				return nil, fmt.Errorf("day %q: %w", doc.Day, err)
			}
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (p *implPipeline) logRoutes(ctx context.Context) {
	routes := p.gw.Routes()
	stages := make([]string, 0, len(routes))
	for stage := range routes {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	for _, stage := range stages {
		p.logger.Info(ctx, "Route: %s -> %s", stage, routes[stage])
	}
}

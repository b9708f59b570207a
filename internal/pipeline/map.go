package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/gateway"
	"github.com/nguyentantai21042004/report-flow/internal/prompts"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

// summarizeDocument is the map step for one day: chunk the transcript,
// summarize the chunks under a bounded worker pool, and when the day
// spanned more than one chunk, compress the position-tagged partials
// under the same daily prompt contract.
func (p *implPipeline) summarizeDocument(ctx context.Context, doc transcript.Document) (string, error) {
	chunks := p.chunker.Split(doc.Content)
	if len(chunks) == 0 {
		return "", &StageError{Stage: gateway.StageDaily, Day: doc.Day, Kind: ErrEmptyContent,
			Err: fmt.Errorf("no usable text after chunking")}
	}

	dailySystem := p.prompts.Get(ctx, prompts.NameDaily)
	p.logger.Info(ctx, "Summarizing day %q: %d chunks", doc.Day, len(chunks))

	partials := make([]string, len(chunks))
	sem := newSemaphore(p.maxConcurrent())

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(c chunker.Chunk, stage string, err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = &StageError{Stage: stage, Day: doc.Day,
				Chunk: c.Index + 1, Kind: ErrGeneration, Err: err}
		}
		mu.Unlock()
	}

	for _, c := range chunks {
		wg.Add(1)
		go func(c chunker.Chunk) {
			defer wg.Done()
			if err := sem.acquire(ctx); err != nil {
				fail(c, gateway.StageDaily, err)
				return
			}
			defer sem.release()

			mu.Lock()
			failed := firstErr != nil
			mu.Unlock()
			if failed {
				return
			}

			p.logger.Debug(ctx, "Day %q chunk %d/%d (%d runes)",
				doc.Day, c.Index+1, len(chunks), c.End-c.Start)

			text, err := p.generate(ctx, gateway.StageDaily, dailySystem, prompts.DailyUser(c.Text))
			if err != nil {
				fail(c, gateway.StageDaily, err)
				return
			}
			partials[c.Index] = strings.TrimSpace(text)
		}(c)
	}
	wg.Wait()

	if firstErr != nil {
		return "", firstErr
	}
	if len(partials) == 1 {
		return partials[0], nil
	}

	tagged := make([]string, len(partials))
	for i, s := range partials {
		tagged[i] = fmt.Sprintf("[Part %d of %d]\n%s", i+1, len(partials), s)
	}

	p.logger.Info(ctx, "Merging %d partial summaries for day %q", len(partials), doc.Day)

	merged, err := p.generate(ctx, gateway.StageCompress, dailySystem,
		prompts.MergeUser(strings.Join(tagged, "\n\n---\n\n")))
	if err != nil {
		return "", &StageError{Stage: gateway.StageCompress, Day: doc.Day, Kind: ErrGeneration, Err: err}
	}
	return strings.TrimSpace(merged), nil
}

// generate wraps a single gateway call with the per-call timeout.
func (p *implPipeline) generate(ctx context.Context, stage, systemPrompt, userPrompt string) (string, error) {
	if timeout := p.cfg.Pipeline.CallTimeout.Std(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return p.gw.Generate(ctx, stage, systemPrompt, userPrompt)
}

func (p *implPipeline) maxConcurrent() int {
	if n := p.cfg.Pipeline.MaxConcurrent; n > 0 {
		return n
	}
	return 1
}

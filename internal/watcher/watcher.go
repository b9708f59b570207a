package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

type implWatcher struct {
	inputDir string
	debounce time.Duration
	run      RunFunc
	logger   logger.Logger
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	pending bool
	wg      sync.WaitGroup
}

// Start monitors the transcript directory until ctx is cancelled.
// Events on supported files arm a debounce window; when it expires a
// full pipeline run is triggered. Runs never overlap: changes arriving
// mid-run coalesce into at most one follow-up run.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for transcript changes (debounce %s)", w.inputDir, w.debounce)
	w.logger.Info(ctx, "Supported formats: .srt, .vtt, .txt")

	var rerun <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for the in-flight run to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				w.logger.Debug(ctx, "Ignoring event: %s (%s)", event.Name, event.Op)
				continue
			}
			w.logger.Info(ctx, "Transcript change detected: %s (%s)", event.Name, event.Op)
			rerun = time.After(w.debounce)

		case <-rerun:
			rerun = nil
			w.trigger(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// relevant reports whether the event should rebuild the report. The
// report reflects the whole directory, so removals and renames count as
// much as new files.
func (w *implWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return transcript.Supported(event.Name)
}

func (w *implWatcher) trigger(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.pending = true
		w.mu.Unlock()
		w.logger.Info(ctx, "Run already in progress, queueing one more")
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for ctx.Err() == nil {
			if err := w.run(ctx); err != nil {
				w.logger.Error(ctx, "Triggered run failed: %v", err)
			}

			w.mu.Lock()
			if !w.pending {
				w.running = false
				w.mu.Unlock()
				return
			}
			w.pending = false
			w.mu.Unlock()
		}

		w.mu.Lock()
		w.running = false
		w.pending = false
		w.mu.Unlock()
	}()
}

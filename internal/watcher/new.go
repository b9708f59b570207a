package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// New creates a Watcher over inputDir. Change bursts within the debounce
// window collapse into a single run.
func New(inputDir string, debounce time.Duration, run RunFunc, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &implWatcher{
		inputDir: inputDir,
		debounce: debounce,
		run:      run,
		logger:   log,
		watcher:  fsw,
	}, nil
}

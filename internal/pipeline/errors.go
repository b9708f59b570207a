package pipeline

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/report-flow/internal/gateway"
)

// Error kinds carried by StageError. ErrEmptyContent is soft: callers
// treat it as a skip where a day is concerned. The rest fail the run.
var (
	ErrLoad         = errors.New("load error")
	ErrEmptyContent = errors.New("empty content")
	ErrGeneration   = errors.New("generation error")
	ErrRender       = errors.New("render error")
)

// ErrConfiguration reports a missing credential or an invalid backend
// binding. It fails a run before any document is touched.
var ErrConfiguration = gateway.ErrConfiguration

// StageError ties a failure to the stage, day and chunk it happened in.
type StageError struct {
	Stage string
	Day   string
	Chunk int // 1-based, zero when the failure is not chunk-scoped
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	msg := fmt.Sprintf("stage %s", e.Stage)
	if e.Day != "" {
		msg += fmt.Sprintf(", day %q", e.Day)
	}
	if e.Chunk > 0 {
		msg += fmt.Sprintf(", chunk %d", e.Chunk)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause to
// errors.Is and errors.As.
func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

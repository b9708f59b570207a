package transcript

import (
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

type implLoader struct {
	dir    string
	logger logger.Logger
}

// New creates a Loader reading raw transcripts from dir.
func New(dir string, log logger.Logger) Loader {
	return &implLoader{
		dir:    dir,
		logger: log,
	}
}

package renderer

import (
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

type implRenderer struct {
	logger logger.Logger
}

// New creates a Renderer producing Word documents.
func New(log logger.Logger) Renderer {
	return &implRenderer{
		logger: log,
	}
}

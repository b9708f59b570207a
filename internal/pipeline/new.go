package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/gateway"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/prompts"
	"github.com/nguyentantai21042004/report-flow/internal/renderer"
	"github.com/nguyentantai21042004/report-flow/internal/store"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

type implPipeline struct {
	cfg      *config.Config
	loader   transcript.Loader
	gw       gateway.Gateway
	store    store.Store
	renderer renderer.Renderer
	prompts  *prompts.Store
	chunker  *chunker.Chunker
	logger   logger.Logger
	now      func() time.Time
}

// New wires a Pipeline from its collaborators.
func New(
	cfg *config.Config,
	loader transcript.Loader,
	gw gateway.Gateway,
	st store.Store,
	rend renderer.Renderer,
	pr *prompts.Store,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		loader:   loader,
		gw:       gw,
		store:    st,
		renderer: rend,
		prompts:  pr,
		chunker:  chunker.New(cfg.Pipeline.ChunkMaxLength, cfg.Pipeline.ChunkOverlap),
		logger:   log,
		now:      time.Now,
	}
}

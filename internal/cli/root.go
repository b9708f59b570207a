package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/gateway"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
	"github.com/nguyentantai21042004/report-flow/internal/prompts"
	"github.com/nguyentantai21042004/report-flow/internal/renderer"
	"github.com/nguyentantai21042004/report-flow/internal/store"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

var cfgFile string

// app bundles the wired collaborators every command works with.
type app struct {
	cfg  *config.Config
	log  logger.Logger
	pipe pipeline.Pipeline
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reportflow",
		Short: "Turn meeting transcripts into a weekly consulting report",
		Long: `reportflow normalizes .srt/.vtt/.txt transcripts, summarizes each day
through a text-generation backend, folds the days into a master summary
and renders a Word report with generated opening and closing paragraphs.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml",
		"path to the configuration file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newResumeCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newScheduleCmd())
	return root
}

// Execute runs the CLI. Cancelling ctx shuts the long-running commands
// down gracefully.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	var log logger.Logger
	if cfg.Logging.File != "" {
		log = logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	} else {
		log = logger.New(cfg.Logging.Level)
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Weekly Report Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, %d CPUs", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Transcripts: %s", cfg.Workspace.Transcripts)
	log.Info(ctx, "Reports: %s", cfg.Workspace.Reports)

	gw, err := gateway.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("initialize backends: %w", err)
	}

	pipe := pipeline.New(cfg,
		transcript.New(cfg.Workspace.Transcripts, log),
		gw,
		store.New(cfg.Workspace, log),
		renderer.New(log),
		prompts.NewStore(cfg.Workspace.Prompts, log),
		log)

	return &app{cfg: cfg, log: log, pipe: pipe}, nil
}

// runPipeline executes one run and reports the outcome.
func (a *app) runPipeline(ctx context.Context, opts pipeline.Options) error {
	result, err := a.pipe.Run(ctx, opts)
	if err != nil {
		return err
	}

	for _, warn := range result.Warnings {
		a.log.Warn(ctx, "Degraded: %s", warn)
	}
	a.log.Info(ctx, "Report ready: %s (%d daily summaries)", result.ReportPath, result.DailyCount)
	return nil
}

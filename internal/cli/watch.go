package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
	"github.com/nguyentantai21042004/report-flow/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run once, then rerun whenever the transcript directory changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			// A failed initial run keeps the watch alive; dropping a
			// fixed transcript retriggers it.
			if err := a.runPipeline(ctx, pipeline.Options{}); err != nil {
				a.log.Error(ctx, "Initial run failed: %v", err)
			}

			w, err := watcher.New(a.cfg.Workspace.Transcripts, a.cfg.Watch.Debounce.Std(),
				func(ctx context.Context) error {
					return a.runPipeline(ctx, pipeline.Options{})
				}, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

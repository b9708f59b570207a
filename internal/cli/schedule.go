package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
	"github.com/nguyentantai21042004/report-flow/internal/scheduler"
)

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Rerun the full pipeline on the configured cron cadence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			if a.cfg.Schedule.Cron == "" {
				return fmt.Errorf("schedule.cron is not configured")
			}

			s, err := scheduler.New(a.cfg.Schedule.Cron,
				func(ctx context.Context) error {
					return a.runPipeline(ctx, pipeline.Options{})
				}, a.log)
			if err != nil {
				return err
			}

			if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

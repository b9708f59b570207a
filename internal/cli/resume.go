package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
)

func newResumeCmd() *cobra.Command {
	var (
		days      []string
		skipDaily bool
	)

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Rebuild the report from persisted artifacts, regenerating only the named days",
		Long: `resume reuses the processed transcripts and daily summaries already on
disk. Days named with --days are regenerated (selectors match by
substring); --skip-daily keeps every daily summary as it is and only
redoes the master synthesis and the report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(days) == 0 && !skipDaily {
				return fmt.Errorf("nothing to resume: provide --days or --skip-daily")
			}
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			return a.runPipeline(cmd.Context(), pipeline.Options{Days: days, SkipDaily: skipDaily})
		},
	}

	cmd.Flags().StringSliceVar(&days, "days", nil, "day selectors to regenerate")
	cmd.Flags().BoolVar(&skipDaily, "skip-daily", false, "reuse all persisted daily summaries")
	return cmd
}

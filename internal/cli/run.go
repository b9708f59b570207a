package cli

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/report-flow/internal/pipeline"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Regenerate everything: normalize transcripts, summarize each day, render the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			return a.runPipeline(cmd.Context(), pipeline.Options{})
		},
	}
}

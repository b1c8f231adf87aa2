package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/report"
	"tableflip.dev/diary/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize what you wrote and completed recently",
		Long: `Report lists the entries written and the todos completed within the
specified time window, and how often each section was filled in.

Examples:
  diary report
  diary report --last 3d
  diary report --last 1mo2w`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := timeutil.ParseWindow(last)
			if err != nil {
				return out.HandleError(err)
			}
			j, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			r := report.Report{Service: j.svc, Window: window, JSON: out.JSON}
			return out.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w)")
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print the entry for a day",
		Example: `
diary show
diary show 2024-02-29 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetDate(firstArg(args))
			if err != nil {
				return out.HandleError(err)
			}
			j, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := show.Show{Service: j.svc, Date: date, JSON: out.JSON}
			return out.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/list"
	"tableflip.dev/diary/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	so := &options.SectionOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent entries, optionally for one section",
		Example: `
diary list
diary list --window 1mo --section music
diary list --all --section food --search kimchi
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := wo.GetWindow()
			if err != nil {
				return out.HandleError(err)
			}
			key, err := so.GetSection()
			if err != nil {
				return out.HandleError(err)
			}
			j, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			l := list.List{
				Service: j.svc,
				Window:  window,
				Section: key,
				Query:   so.Search,
				JSON:    out.JSON,
			}
			return out.HandleError(l.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo, timeutil.DefaultWindow)
	options.AddSectionArgs(cmd, so)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}

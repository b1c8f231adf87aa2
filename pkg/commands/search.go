package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Find entries containing some text",
		Example: `
diary search beach
diary search "first snow" --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := search.Search{Service: j.svc, Query: strings.Join(args, " "), JSON: out.JSON}
			return out.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/runner/info"
	"tableflip.dev/diary/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	var repair bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the journal is stored and the state of its records.",
		Example: `
diary info
diary info --repair
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Repair:      repair,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Move corrupt records aside so the journal starts fresh.")
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/runner/calendar"
)

const layoutMonth = "2006-01"

func addCalendar(topLevel *cobra.Command) {
	var month string
	var months int

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month with the days you wrote highlighted",
		Example: `
diary calendar
diary calendar --month 2024-02
diary calendar --month 2024-01 --months 12
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var on time.Time
			if month != "" {
				var err error
				on, err = time.ParseInLocation(layoutMonth, month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
			}
			j, err := loadJournal()
			if err != nil {
				return err
			}
			c := calendar.Calendar{Service: j.svc, Month: on, Months: months}
			return c.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to print, YYYY-MM. Defaults to this month.")
	cmd.Flags().IntVarP(&months, "months", "n", 1, "Number of months to print.")
	topLevel.AddCommand(cmd)
}

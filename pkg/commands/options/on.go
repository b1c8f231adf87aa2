package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the date an entry command works on.
type OnOptions struct {
	OnString string
	// Now defaults to time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on=yesterday.`)
}

// GetDate resolves the flag, or arg when the flag is empty, to a date key.
// An empty value means today.
func (o *OnOptions) GetDate(arg string) (string, error) {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	v := strings.TrimSpace(o.OnString)
	if v == "" {
		v = strings.TrimSpace(arg)
	}
	switch strings.ToLower(v) {
	case "", "today":
		return entry.Today(now()), nil
	case "yesterday":
		return entry.FormatDate(now().AddDate(0, 0, -1)), nil
	case "tomorrow":
		return entry.FormatDate(now().AddDate(0, 0, 1)), nil
	}

	t, err := time.ParseInLocation(layoutISO, v, time.Local)
	if err != nil {
		// Let the year be the same.
		short, err := time.ParseInLocation(layoutISOShort, v, time.Local)
		if err != nil {
			return "", fmt.Errorf("%w: %q", entry.ErrInvalidDate, v)
		}
		t, err = shortDate(now(), short.Month(), short.Day())
		if err != nil {
			return "", fmt.Errorf("%w: %q", err, v)
		}
	}
	return entry.FormatDate(t), nil
}

// shortDate places month/day in the year of now. A diary looks back, so 12/5
// typed on 1/3 means last December. A day the chosen year does not have, such
// as 2/29 outside a leap year, is an error rather than a roll into March.
func shortDate(now time.Time, month time.Month, day int) (time.Time, error) {
	year := now.Year()
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if t.After(now) {
		year--
		t = time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	}
	if t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %s %d does not exist in %d", entry.ErrInvalidDate, month, day, year)
	}
	return t, nil
}

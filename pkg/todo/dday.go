package todo

import (
	"fmt"
	"time"

	"tableflip.dev/diary/pkg/timeutil"
)

// DDay renders the day difference between due and now: D-3 before the due
// date, D-Day on it, D+2 after it.
func DDay(due, now time.Time) string {
	diff := timeutil.DaysBetween(now, due)
	switch {
	case diff == 0:
		return "D-Day"
	case diff > 0:
		return fmt.Sprintf("D-%d", diff)
	default:
		return fmt.Sprintf("D+%d", -diff)
	}
}

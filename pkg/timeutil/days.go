package timeutil

import "time"

// Midnight truncates t to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// DaysBetween counts calendar days from the day of from to the day of to.
// It is positive when to is later. Both ends are truncated to midnight and
// compared as civil dates, so DST shifts do not skew the count.
func DaysBetween(from, to time.Time) int {
	f := Midnight(from)
	t := Midnight(to)
	fu := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	tu := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(tu.Sub(fu).Hours() / 24)
}

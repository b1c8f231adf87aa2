package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints a month grid. Days in marked are bold, today is
// underlined.
func (pp *PrettyPrint) PrintMonth(then time.Time, marked map[int]bool, today time.Time) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%*s%s\n", mid, "", title)
	_, _ = tf.Fprintln(pp.out(), "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 1; i <= days; i++ {
		printer := l1
		if marked[i] {
			printer = l2
		}
		if SameMonth(then, today) && today.Day() == i {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", i)
		_, _ = fmt.Fprint(pp.out(), " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// SameMonth reports whether a and b fall in the same local month.
func SameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()-1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

// Package timeutil holds calendar-day arithmetic shared by the journal views.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback list window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]Window{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Years: 1},
		"yr":     {Years: 1},
		"year":   {Years: 1},
		"years":  {Years: 1},
	}
)

// Window is a calendar span counted back from today.
type Window struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether the window spans nothing.
func (w Window) IsZero() bool {
	return w.Years == 0 && w.Months == 0 && w.Days == 0
}

// Start returns local midnight of the first day inside the window ending on
// the day of now. A one day window starts today.
func (w Window) Start(now time.Time) time.Time {
	return Midnight(now).AddDate(-w.Years, -w.Months, -w.Days+1)
}

// String renders a compact canonical form such as 1y2mo3d.
func (w Window) String() string {
	var parts []string
	if w.Years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", w.Years))
	}
	if w.Months > 0 {
		parts = append(parts, fmt.Sprintf("%dmo", w.Months))
	}
	if weeks := w.Days / 7; weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days := w.Days % 7; days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}

// ParseWindow parses a human-friendly span such as "1w", "3d" or "1mo2w".
// When the input is empty, the default window of one week is used.
func ParseWindow(input string) (Window, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := Window{}
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total.Years += unit.Years * value
		total.Months += unit.Months * value
		total.Days += unit.Days * value

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total.IsZero() {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

package cli

import (
	"fmt"
	"time"
)

// ordinalDay renders a day of the month with its English ordinal suffix.
// 11 through 13 take "th" regardless of their last digit.
func ordinalDay(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// formattedDate renders a date as ordinal day, short month and year,
// e.g. "3rd, Sep 2026".
func formattedDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %d", ordinalDay(t.Day()), t.Format("Jan"), t.Year())
}

package datemath

import (
	"fmt"
	"time"
)

// ordinalLayout renders the part after the day, e.g. "April 2021 - 09:30 PM".
const ordinalLayout = "January 2006 - 03:04 PM"

// Ordinal formats t in UTC as "1st April 2021 - 09:30 PM UTC".
// The day carries no padding; the clock is 12-hour, zero padded.
func Ordinal(t time.Time) string {
	t = t.UTC()
	day := t.Day()
	return fmt.Sprintf("%d%s %s UTC", day, DaySuffix(day), t.Format(ordinalLayout))
}

// DaySuffix returns the English ordinal suffix for a day of month.
// 11, 12 and 13 always take "th".
func DaySuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

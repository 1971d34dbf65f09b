package fuzzy

import (
	"fmt"
	"time"
)

// Detail is the digital overlay revealed by a tap.
type Detail struct {
	Date string // "Sun 05"
	Time string // " 2:30"
	AmPm string // "pm"
}

var weekdayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatDetail formats the overlay for t in t's own location. The output
// does not depend on the process locale.
func FormatDetail(t time.Time) Detail {
	hour := t.Hour()

	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}

	ampm := "am"
	if hour >= 12 {
		ampm = "pm"
	}

	return Detail{
		Date: fmt.Sprintf("%s %02d", weekdayAbbrev[t.Weekday()], t.Day()),
		Time: fmt.Sprintf("%2d:%02d", h12, t.Minute()),
		AmPm: ampm,
	}
}

package face

import "github.com/muurk/fuzzyplus/internal/fuzzy"

// Schedule is the layout test hook. When a controller has a schedule, each
// tap shows the next minute from the schedule at a fixed hour instead of
// the clock's minute, so every rounding and tolerance boundary can be
// stepped through by hand.
type Schedule struct {
	Hour    int
	Minutes []int

	next int
}

// DefaultSchedule returns the boundary schedule: each quarter, the last
// minute inside the tolerance window and the first minute outside it.
func DefaultSchedule() *Schedule {
	tol := fuzzy.Tolerance
	return &Schedule{
		Hour: 0,
		Minutes: []int{
			0,
			tol,
			tol + 1,
			15 - tol - 1,
			15,
			15 + tol + 1,
			30 - tol - 1,
			30,
			30 + tol + 1,
			45 - tol - 1,
			45,
			45 + tol + 1,
			60 - tol - 1,
		},
	}
}

// Next returns the next hour and minute, wrapping at the end.
func (s *Schedule) Next() (hour, minute int) {
	if len(s.Minutes) == 0 {
		return s.Hour, 0
	}
	minute = s.Minutes[s.next]
	s.next = (s.next + 1) % len(s.Minutes)
	return s.Hour, minute
}

// Position returns the index of the entry Next will return.
func (s *Schedule) Position() int {
	return s.next
}

// Len returns the number of entries.
func (s *Schedule) Len() int {
	return len(s.Minutes)
}

// Package recurrence expands a weekly recurrence bound to a term window into
// concrete calendar dates.
package recurrence

import "time"

// Term is the date window a weekly recurrence runs over. Start/End bound the
// term; dates inside [BreakStart, BreakEnd] (inclusive, compared by calendar
// date) are excluded.
type Term struct {
	Start      time.Time
	End        time.Time
	BreakStart time.Time
	BreakEnd   time.Time
}

// Weekly returns every occurrence of day within the term, at midnight in the
// term's location, ascending and duplicate-free. A date falling exactly on
// BreakStart or BreakEnd is excluded. Returns an empty slice when no
// occurrence fits.
func Weekly(day time.Weekday, term Term) []time.Time {
	loc := term.Start.Location()
	start := midnight(term.Start, loc)
	end := midnight(term.End, loc)
	breakStart := midnight(term.BreakStart, loc)
	breakEnd := midnight(term.BreakEnd, loc)

	dates := make([]time.Time, 0)
	current := start
	for current.Weekday() != day {
		current = current.AddDate(0, 0, 1)
		if current.After(end) {
			return dates
		}
	}
	for !current.After(end) {
		inBreak := !current.Before(breakStart) && !current.After(breakEnd)
		if !inBreak {
			dates = append(dates, current)
		}
		current = current.AddDate(0, 0, 7)
	}
	return dates
}

// CombineDateTime keeps the calendar date of date and the clock of clock,
// in date's location.
func CombineDateTime(date, clock time.Time) time.Time {
	loc := date.Location()
	y, m, d := date.Date()
	c := clock.In(loc)
	return time.Date(y, m, d, c.Hour(), c.Minute(), c.Second(), 0, loc)
}

// OpenTimeFor returns the most recent occurrence of openDay on or before
// sessionDate, at the clock time carried by openClock. This is when bookings
// for a session on sessionDate open.
func OpenTimeFor(sessionDate time.Time, openDay time.Weekday, openClock time.Time) time.Time {
	date := midnight(sessionDate, sessionDate.Location())
	for date.Weekday() != openDay {
		date = date.AddDate(0, 0, -1)
	}
	return CombineDateTime(date, openClock)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

package domain

import (
	"errors"
	"time"
)

// DateRange is an inclusive span of calendar dates. Suggestion generation is
// bounded to this range. The Start/End values carry the date portion only;
// time-of-day and location are normalized away by NewDateRange.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two instants, truncating each to its
// calendar date in UTC.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := DateOf(start)
	e := DateOf(end)
	if e.Before(s) {
		return DateRange{}, errors.New("date range end precedes start")
	}
	return DateRange{Start: s, End: e}, nil
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether date (compared by calendar date) is in the range.
func (r DateRange) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range (at least 1).
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// EachDay calls fn once per date in the range, in ascending order, stopping
// early if fn returns false.
func (r DateRange) EachDay(fn func(date time.Time) bool) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}

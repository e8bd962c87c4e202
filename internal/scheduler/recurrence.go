package scheduler

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// maxLookaheadDays bounds forward scans so a rule that never matches again
// cannot loop unboundedly.
const maxLookaheadDays = 366

// Matches reports whether date satisfies the recurrence rule. It is a pure
// function: date and the rule's anchor dates are compared by calendar date,
// and an unrecognized frequency yields no match rather than an error, so one
// bad rule cannot abort a whole scan.
func Matches(date time.Time, rule *domain.RecurrenceRule) bool {
	if rule == nil {
		return false
	}

	d := domain.DateOf(date)
	start := domain.DateOf(rule.StartDate)
	if d.Before(start) {
		return false
	}
	if rule.EndDate != nil && d.After(domain.DateOf(*rule.EndDate)) {
		return false
	}

	interval := rule.EffectiveInterval()

	switch rule.Frequency {
	case domain.FreqDaily:
		return daysBetween(start, d)%interval == 0

	case domain.FreqWeekly:
		if (daysBetween(start, d)/7)%interval != 0 {
			return false
		}
		// Without a weekday set, every day of a matching week matches.
		if len(rule.ByWeekdays) == 0 {
			return true
		}
		return rule.HasWeekday(d.Weekday())

	case domain.FreqMonthly:
		if monthsBetween(start, d)%interval != 0 {
			return false
		}
		if len(rule.ByMonthDays) > 0 {
			return containsInt(rule.ByMonthDays, d.Day())
		}
		if len(rule.ByWeekdays) > 0 && len(rule.BySetPos) > 0 {
			return matchesSetPos(d, rule)
		}
		return true

	case domain.FreqYearly:
		if (d.Year()-start.Year())%interval != 0 {
			return false
		}
		// A Feb-29 anchor matches only in years that have a Feb 29.
		return d.Month() == start.Month() && d.Day() == start.Day()

	default:
		return false
	}
}

// NextOccurrence returns the first date on or after from that matches the
// rule, scanning at most maxLookaheadDays days. The second return value is
// false when no occurrence exists within the horizon.
func NextOccurrence(from time.Time, rule *domain.RecurrenceRule) (time.Time, bool) {
	d := domain.DateOf(from)
	for i := 0; i <= maxLookaheadDays; i++ {
		if Matches(d, rule) {
			return d, true
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// matchesSetPos checks positional monthly rules such as "2nd Tuesday" or
// "last Friday" (negative positions count from month end).
func matchesSetPos(d time.Time, rule *domain.RecurrenceRule) bool {
	if !rule.HasWeekday(d.Weekday()) {
		return false
	}
	fromStart := weekdayOccurrenceInMonth(d)
	fromEnd := weekdayOccurrenceFromMonthEnd(d)
	for _, pos := range rule.BySetPos {
		if pos > 0 && pos == fromStart {
			return true
		}
		if pos < 0 && pos == fromEnd {
			return true
		}
	}
	return false
}

// weekdayOccurrenceInMonth returns the 1-based count of d's weekday within
// its month up to and including d (the 2nd Tuesday returns 2).
func weekdayOccurrenceInMonth(d time.Time) int {
	return (d.Day()-1)/7 + 1
}

// weekdayOccurrenceFromMonthEnd returns the negative 1-based count from the
// end of the month (the last Friday returns -1).
func weekdayOccurrenceFromMonthEnd(d time.Time) int {
	last := daysInMonth(d.Year(), d.Month())
	return -((last-d.Day())/7 + 1)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween returns whole days from a to b; both must be date-normalized.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// monthsBetween returns whole calendar months from a to b, ignoring days.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

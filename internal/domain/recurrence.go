package domain

import (
	"errors"
	"time"
)

// RecurrenceRule is an RRULE-like description of repeating calendar dates.
// It describes dates only; the time-of-day window lives on the Activity.
type RecurrenceRule struct {
	Frequency Frequency
	// Interval is the step between occurrences in Frequency units.
	// Zero is treated as 1.
	Interval int

	// ByWeekdays restricts WEEKLY and positional MONTHLY rules.
	ByWeekdays []time.Weekday
	// ByMonthDays restricts MONTHLY rules to specific days of the month.
	ByMonthDays []int
	// BySetPos selects the Nth weekday occurrence within a month for
	// MONTHLY rules, e.g. 2 for "2nd Tuesday". Negative values count from
	// month end: -1 is the last occurrence.
	BySetPos []int

	// StartDate anchors the rule. No date before it ever matches.
	StartDate time.Time
	// EndDate, when set, is the last date that can match (inclusive).
	EndDate *time.Time
}

// EffectiveInterval returns the interval with the default of 1 applied.
func (r *RecurrenceRule) EffectiveInterval() int {
	if r.Interval <= 0 {
		return 1
	}
	return r.Interval
}

// Validate checks structural consistency. It does not reject rules the
// matcher treats as "never matching" (that is the matcher's defensive path).
func (r *RecurrenceRule) Validate() error {
	if !ValidFrequencies[string(r.Frequency)] {
		return errors.New("unknown frequency")
	}
	if r.Interval < 0 {
		return errors.New("interval must not be negative")
	}
	if r.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return errors.New("end date precedes start date")
	}
	for _, d := range r.ByMonthDays {
		if d < 1 || d > 31 {
			return errors.New("day of month out of range")
		}
	}
	for _, p := range r.BySetPos {
		if p == 0 || p < -5 || p > 5 {
			return errors.New("set position out of range")
		}
	}
	return nil
}

// HasWeekday reports whether w is in the rule's weekday set.
func (r *RecurrenceRule) HasWeekday(w time.Weekday) bool {
	for _, d := range r.ByWeekdays {
		if d == w {
			return true
		}
	}
	return false
}

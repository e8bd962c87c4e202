package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatches_BeforeStartOrAfterEnd(t *testing.T) {
	end := date(2025, 6, 30)
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqDaily,
		Interval:  1,
		StartDate: date(2025, 6, 10),
		EndDate:   &end,
	}

	assert.False(t, Matches(date(2025, 6, 9), rule))
	assert.True(t, Matches(date(2025, 6, 10), rule))
	assert.True(t, Matches(date(2025, 6, 30), rule))
	assert.False(t, Matches(date(2025, 7, 1), rule))
}

func TestMatches_DailyInterval(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqDaily,
		Interval:  2,
		StartDate: date(2025, 6, 10),
	}

	assert.True(t, Matches(date(2025, 6, 10), rule))
	assert.False(t, Matches(date(2025, 6, 11), rule))
	assert.True(t, Matches(date(2025, 6, 12), rule))
}

func TestMatches_WeeklyByDay(t *testing.T) {
	// 2025-06-09 is a Monday.
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqWeekly,
		Interval:   1,
		ByWeekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StartDate:  date(2025, 6, 9),
	}

	assert.True(t, Matches(date(2025, 6, 9), rule), "Monday")
	assert.False(t, Matches(date(2025, 6, 10), rule), "Tuesday")
	assert.True(t, Matches(date(2025, 6, 11), rule), "Wednesday")
	assert.False(t, Matches(date(2025, 6, 12), rule), "Thursday")
	assert.True(t, Matches(date(2025, 6, 13), rule), "Friday")
}

func TestMatches_WeeklyIntervalSkipsWeeks(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqWeekly,
		Interval:   2,
		ByWeekdays: []time.Weekday{time.Monday},
		StartDate:  date(2025, 6, 9),
	}

	assert.True(t, Matches(date(2025, 6, 9), rule))
	assert.False(t, Matches(date(2025, 6, 16), rule), "off week")
	assert.True(t, Matches(date(2025, 6, 23), rule))
}

func TestMatches_WeeklyNoByDayMatchesWholeWeek(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqWeekly,
		Interval:  1,
		StartDate: date(2025, 6, 9),
	}

	for i := 0; i < 7; i++ {
		assert.True(t, Matches(date(2025, 6, 9+i), rule), "day offset %d", i)
	}
}

func TestMatches_MonthlyByMonthDay(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:   domain.FreqMonthly,
		Interval:    1,
		ByMonthDays: []int{1, 15},
		StartDate:   date(2025, 1, 1),
	}

	assert.True(t, Matches(date(2025, 3, 1), rule))
	assert.True(t, Matches(date(2025, 3, 15), rule))
	assert.False(t, Matches(date(2025, 3, 16), rule))
}

func TestMatches_MonthlyFirstSunday(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqMonthly,
		Interval:   1,
		ByWeekdays: []time.Weekday{time.Sunday},
		BySetPos:   []int{1},
		StartDate:  date(2025, 1, 1),
	}

	// June 2025: Sundays are the 1st, 8th, 15th, 22nd, 29th.
	assert.True(t, Matches(date(2025, 6, 1), rule), "first Sunday")
	assert.False(t, Matches(date(2025, 6, 8), rule), "second Sunday")
	assert.False(t, Matches(date(2025, 6, 2), rule), "a Monday")
}

func TestMatches_MonthlyLastFriday(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqMonthly,
		Interval:   1,
		ByWeekdays: []time.Weekday{time.Friday},
		BySetPos:   []int{-1},
		StartDate:  date(2025, 1, 1),
	}

	// June 2025: Fridays are the 6th, 13th, 20th, 27th.
	assert.True(t, Matches(date(2025, 6, 27), rule))
	assert.False(t, Matches(date(2025, 6, 20), rule))
}

func TestMatches_MonthlyIntervalCountsMonths(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:   domain.FreqMonthly,
		Interval:    3,
		ByMonthDays: []int{10},
		StartDate:   date(2025, 1, 10),
	}

	assert.True(t, Matches(date(2025, 1, 10), rule))
	assert.False(t, Matches(date(2025, 2, 10), rule))
	assert.True(t, Matches(date(2025, 4, 10), rule))
}

func TestMatches_MonthlyBareRuleMatchesWholeMonth(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqMonthly,
		Interval:  2,
		StartDate: date(2025, 1, 1),
	}

	assert.True(t, Matches(date(2025, 3, 22), rule))
	assert.False(t, Matches(date(2025, 2, 22), rule))
}

func TestMatches_Yearly(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqYearly,
		Interval:  1,
		StartDate: date(2020, 4, 12),
	}

	assert.True(t, Matches(date(2025, 4, 12), rule))
	assert.False(t, Matches(date(2025, 4, 13), rule))
	assert.False(t, Matches(date(2025, 5, 12), rule))
}

func TestMatches_YearlyFeb29SkipsNonLeapYears(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqYearly,
		Interval:  1,
		StartDate: date(2024, 2, 29),
	}

	assert.False(t, Matches(date(2025, 2, 28), rule))
	assert.False(t, Matches(date(2025, 3, 1), rule))
	assert.True(t, Matches(date(2028, 2, 29), rule))
}

func TestMatches_UnknownFrequencyIsNoMatch(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.Frequency("HOURLY"),
		StartDate: date(2025, 6, 1),
	}
	assert.False(t, Matches(date(2025, 6, 1), rule))
	assert.False(t, Matches(date(2025, 6, 2), rule))
}

func TestMatches_Idempotent(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqWeekly,
		Interval:   2,
		ByWeekdays: []time.Weekday{time.Tuesday},
		StartDate:  date(2025, 6, 3),
	}
	d := date(2025, 6, 17)
	first := Matches(d, rule)
	second := Matches(d, rule)
	assert.Equal(t, first, second)
}

func TestNextOccurrence(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency:  domain.FreqMonthly,
		Interval:   1,
		ByWeekdays: []time.Weekday{time.Sunday},
		BySetPos:   []int{1},
		StartDate:  date(2025, 1, 1),
	}

	next, ok := NextOccurrence(date(2025, 6, 2), rule)
	require.True(t, ok)
	assert.Equal(t, date(2025, 7, 6), next, "first Sunday of July")
}

func TestNextOccurrence_HorizonCap(t *testing.T) {
	end := date(2025, 6, 30)
	rule := &domain.RecurrenceRule{
		Frequency: domain.FreqDaily,
		Interval:  1,
		StartDate: date(2025, 6, 1),
		EndDate:   &end,
	}

	_, ok := NextOccurrence(date(2025, 7, 1), rule)
	assert.False(t, ok, "rule ended, nothing within horizon")
}

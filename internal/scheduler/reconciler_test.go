package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

// dayBefore freezes time on the prior afternoon so the present-day floor
// stays out of play unless a test freezes time on the day itself.
var dayBefore = FixedClock{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

func existing(summary string, start, end time.Time) domain.ExistingEvent {
	return domain.ExistingEvent{Summary: summary, Start: start, End: end, CalendarID: "cal-1", CalendarName: "Personal"}
}

func suggestion(id string, policy domain.SchedulePolicy, start, end time.Time) domain.Suggestion {
	return domain.Suggestion{
		ID: id, ActivityID: "act-" + id, Title: id, Policy: policy,
		Start: start, End: end, Confidence: domain.ConfidenceHigh,
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(at(10, 0), at(11, 0), at(10, 30), at(11, 30)))
	assert.False(t, Overlaps(at(10, 0), at(11, 0), at(11, 0), at(12, 0)), "touching intervals do not conflict")
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(10, 30), at(11, 0)), "containment conflicts")
	assert.False(t, Overlaps(at(8, 0), at(9, 0), at(9, 30), at(10, 0)))
}

func TestReconcile_NoConflictKeepsUnchanged(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("s1", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	ev := []domain.ExistingEvent{existing("Dinner", at(17, 0), at(18, 0))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.True(t, out[0].Start.Equal(at(19, 0)))
	assert.False(t, out[0].HasConflict)
	assert.False(t, out[0].ConflictAvoided)
	assert.Equal(t, domain.ConfidenceHigh, out[0].Confidence)
}

func TestReconcile_StrictConflictFlaggedNotMoved(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("dentist", domain.PolicyStrict, at(10, 0), at(11, 0))}
	ev := []domain.ExistingEvent{existing("Standup", at(10, 0), at(11, 0))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.True(t, out[0].Start.Equal(at(10, 0)), "authoritative time is never relocated")
	assert.True(t, out[0].HasConflict)
	assert.Equal(t, domain.ConfidenceLow, out[0].Confidence)
	require.NotEmpty(t, out[0].Notes)
	assert.Contains(t, out[0].Notes[0], "Standup")
}

func TestReconcile_FlexibleConflictRelocated(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("read", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	ev := []domain.ExistingEvent{existing("Concert", at(19, 0), at(20, 0))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.True(t, out[0].ConflictAvoided)
	assert.False(t, out[0].HasConflict)
	assert.Equal(t, domain.ConfidenceMedium, out[0].Confidence)
	assert.False(t, Overlaps(out[0].Start, out[0].End, at(19, 0), at(20, 0)))
	assert.Equal(t, out[0].Start.Day(), at(0, 0).Day(), "relocation stays on the same day")
}

func TestReconcile_FlexibleMovesToNextFreeEveningSlot(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("read", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	// Morning and afternoon blocks fully busy, evening busy until 19:30.
	ev := []domain.ExistingEvent{
		existing("Offsite", at(8, 0), at(17, 0)),
		existing("Dinner", at(18, 0), at(19, 30)),
	}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.Equal(t, "19:30", out[0].Start.Format("15:04"))
	assert.True(t, out[0].ConflictAvoided)
}

func TestReconcile_FlexibleDroppedWhenDayFull(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("read", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	ev := []domain.ExistingEvent{existing("All day thing", at(0, 0), at(23, 59))}

	out := r.Reconcile(sug, ev)
	assert.Empty(t, out, "unschedulable suggestions are dropped, not errors")
}

func TestReconcile_RelocationsDoNotCollideWithEachOther(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	// Two flexible suggestions in the same busy slot; both must move, and
	// not onto each other.
	sug := []domain.Suggestion{
		suggestion("s1", domain.PolicyFlexible, at(19, 0), at(20, 0)),
		suggestion("s2", domain.PolicyFlexible, at(19, 0), at(20, 0)),
	}
	ev := []domain.ExistingEvent{existing("Dinner", at(18, 30), at(20, 30))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 2)
	assert.False(t, Overlaps(out[0].Start, out[0].End, out[1].Start, out[1].End),
		"relocated suggestions must not overlap each other")
}

func TestReconcile_KeptSuggestionsSameDayNeverOverlap(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{
		suggestion("a", domain.PolicyStrict, at(9, 0), at(10, 0)),
		suggestion("b", domain.PolicyFlexible, at(9, 30), at(10, 30)),
		suggestion("c", domain.PolicyFlexible, at(9, 30), at(10, 30)),
	}

	out := r.Reconcile(sug, nil)

	for i := range out {
		for j := i + 1; j < len(out); j++ {
			assert.False(t, Overlaps(out[i].Start, out[i].End, out[j].Start, out[j].End),
				"%s and %s overlap", out[i].Title, out[j].Title)
		}
	}
}

func TestReconcile_OutputSortedByStart(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{
		suggestion("late", domain.PolicyStrict, at(15, 0), at(16, 0)),
		suggestion("early", domain.PolicyStrict, at(8, 0), at(9, 0)),
		suggestion("mid", domain.PolicyStrict, at(11, 0), at(12, 0)),
	}

	out := r.Reconcile(sug, nil)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"early", "mid", "late"}, []string{out[0].Title, out[1].Title, out[2].Title})
}

func TestReconcile_TodayRelocationRespectsPresentFloor(t *testing.T) {
	r := NewReconciler(FixedClock{T: at(12, 0)}, time.UTC, 30)
	sug := []domain.Suggestion{suggestion("read", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	ev := []domain.ExistingEvent{existing("Dinner", at(18, 0), at(22, 0))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.Equal(t, "13:00", out[0].Start.Format("15:04"),
		"morning slots are already in the past on the current day")
	assert.True(t, out[0].ConflictAvoided)
}

func TestReconcile_TodayRelocationDroppedWhenOnlyPastSlotsRemain(t *testing.T) {
	r := NewReconciler(FixedClock{T: at(21, 40)}, time.UTC, 30)
	sug := []domain.Suggestion{suggestion("read", domain.PolicyFlexible, at(19, 0), at(20, 0))}
	ev := []domain.ExistingEvent{existing("Dinner", at(18, 0), at(22, 0))}

	out := r.Reconcile(sug, ev)
	assert.Empty(t, out, "a day with only past slots left yields no relocation")
}

func TestReconcile_DeadlineConflictKeptInPlace(t *testing.T) {
	r := NewReconciler(dayBefore, time.UTC, 0)
	sug := []domain.Suggestion{suggestion("taxes", domain.PolicyDeadline, at(9, 0), at(10, 0))}
	ev := []domain.ExistingEvent{existing("Interview", at(9, 30), at(10, 30))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.True(t, out[0].HasConflict)
	assert.True(t, out[0].Start.Equal(at(9, 0)))
}

func TestReconcile_NormalizesTimezonesBeforeComparing(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	r := NewReconciler(dayBefore, loc, 0)

	// 14:00 UTC == 10:00 New York. The existing event is supplied in UTC,
	// the suggestion in local time; they are the same interval.
	sug := []domain.Suggestion{suggestion("s1", domain.PolicyStrict,
		time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
		time.Date(2025, 6, 2, 11, 0, 0, 0, loc))}
	ev := []domain.ExistingEvent{existing("Remote call",
		time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC))}

	out := r.Reconcile(sug, ev)

	require.Len(t, out, 1)
	assert.True(t, out[0].HasConflict, "conflict must be detected across timezones")
}

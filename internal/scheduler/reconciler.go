package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Both sides must already be normalized to the same
// timezone.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// relocation blocks: same-day candidate windows scanned in stable order when
// a flexible suggestion must move. Hours are local to the user.
var relocationBlocks = []struct {
	startMin int
	endMin   int
}{
	{8 * 60, 12 * 60},  // morning
	{13 * 60, 17 * 60}, // afternoon
	{18 * 60, 22 * 60}, // evening
}

// Reconciler filters suggestions against existing calendar events, relocating
// flexible suggestions and flagging authoritative ones.
type Reconciler struct {
	clock     Clock
	loc       *time.Location
	bufferMin int
}

// NewReconciler creates a Reconciler operating in the user's location. The
// clock and buffer bound current-day relocations the same way the generator
// bounds current-day candidates.
func NewReconciler(clock Clock, loc *time.Location, bufferMin int) *Reconciler {
	return &Reconciler{clock: clock, loc: loc, bufferMin: bufferMin}
}

// Reconcile returns the surviving suggestions, stable-sorted by start.
//
// A non-conflicting suggestion is kept unchanged. A conflicting flexible
// suggestion is moved to the first free same-day slot, never earlier than the
// present-day floor, or dropped when none exists. Conflicting strict, deadline and recurring suggestions are kept in
// place with HasConflict set, since their times are authoritative. Already
// kept suggestions from the same pass act as additional blockers, so
// relocations cannot reintroduce collisions among themselves.
func (r *Reconciler) Reconcile(suggestions []domain.Suggestion, existing []domain.ExistingEvent) []domain.Suggestion {
	kept := make([]domain.Suggestion, 0, len(suggestions))

	for _, s := range suggestions {
		s.Start = s.Start.In(r.loc)
		s.End = s.End.In(r.loc)

		conflict := r.firstConflict(s.Start, s.End, existing, kept)
		if conflict == "" {
			kept = append(kept, s)
			continue
		}

		if !s.Policy.Relocatable() {
			s.HasConflict = true
			s.Confidence = domain.ConfidenceLow
			s.AddNote(fmt.Sprintf("Conflicts with %q", conflict))
			kept = append(kept, s)
			continue
		}

		moved, ok := r.relocate(s, existing, kept)
		if !ok {
			// Unschedulable for this day. Dropped, visible only via
			// summary counts.
			continue
		}
		kept = append(kept, moved)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start.Before(kept[j].Start)
	})
	return kept
}

// firstConflict returns the summary of the first blocker overlapping
// [start,end), or "" when the window is free.
func (r *Reconciler) firstConflict(start, end time.Time, existing []domain.ExistingEvent, placed []domain.Suggestion) string {
	for _, ev := range existing {
		if Overlaps(start, end, ev.Start.In(r.loc), ev.End.In(r.loc)) {
			return ev.Summary
		}
	}
	for _, p := range placed {
		if Overlaps(start, end, p.Start, p.End) {
			return p.Title
		}
	}
	return ""
}

// relocate scans the same-day slot catalogue in order and moves s to the
// first window free of both existing events and already placed suggestions.
func (r *Reconciler) relocate(s domain.Suggestion, existing []domain.ExistingEvent, placed []domain.Suggestion) (domain.Suggestion, bool) {
	dur := s.End.Sub(s.Start)
	day := s.Start
	floor := r.presentFloor(day)

	for _, block := range relocationBlocks {
		for min := block.startMin; min+int(dur.Minutes()) <= block.endMin; min += 30 {
			start := time.Date(day.Year(), day.Month(), day.Day(), min/60, min%60, 0, 0, r.loc)
			if start.Before(floor) {
				continue
			}
			end := start.Add(dur)
			if r.firstConflict(start, end, existing, placed) != "" {
				continue
			}
			original := s.Start
			s.Start = start
			s.End = end
			s.ConflictAvoided = true
			s.Confidence = domain.ConfidenceMedium
			s.AddNote(fmt.Sprintf("Rescheduled from %s to avoid a conflict", original.Format("15:04")))
			return s, true
		}
	}
	return domain.Suggestion{}, false
}

// presentFloor returns the earliest admissible start for a slot on day: now
// plus the buffer, rounded up to the next half hour, when day is the current
// day, and the zero time otherwise.
func (r *Reconciler) presentFloor(day time.Time) time.Time {
	now := r.clock.Now().In(r.loc)
	if !domain.DateOf(day).Equal(domain.DateOf(now)) {
		return time.Time{}
	}
	return roundUpToHalfHour(now.Add(time.Duration(r.bufferMin) * time.Minute))
}

package domain

import "time"

// ExistingEvent is a pre-existing calendar commitment sourced externally.
// Immutable; its lifetime is a single reconciliation call.
type ExistingEvent struct {
	Summary      string
	Start        time.Time
	End          time.Time
	CalendarID   string
	CalendarName string
}

// Suggestion is a candidate time placement for an activity. Created by the
// generator, possibly relocated or flagged by the reconciler, and read-only
// afterwards. Never persisted.
type Suggestion struct {
	ID          string
	ActivityID  string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Policy      SchedulePolicy
	Confidence  Confidence
	Urgency     Urgency
	Notes       []string

	// HasConflict marks an authoritative suggestion that overlaps an
	// existing event and could not be moved.
	HasConflict bool
	// ConflictAvoided marks a flexible suggestion that was relocated away
	// from a conflict.
	ConflictAvoided bool
}

// AddNote appends a free-form note to the suggestion.
func (s *Suggestion) AddNote(note string) {
	s.Notes = append(s.Notes, note)
}

// Urgent reports whether the suggestion should be surfaced as an alert.
func (s *Suggestion) Urgent() bool {
	return s.Urgency == UrgencyUpcoming || s.Urgency == UrgencyOverdue
}

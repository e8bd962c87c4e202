package domain

import (
	"errors"
	"fmt"
	"time"
)

// Activity is a user-owned schedulable item. Exactly the fields relevant to
// its policy are populated; the scheduler must not assume others are present.
type Activity struct {
	ID          string
	Name        string
	Description string
	Policy      SchedulePolicy
	ArchivedAt  *time.Time

	// Strict
	StartTime *time.Time
	EndTime   *time.Time

	// Flexible
	MaxFrequencyDays *int

	// Deadline
	Deadline *time.Time

	// RecurringStrict
	Recurrence *RecurrenceRule
	// WindowStartMin/WindowEndMin are the daily occurrence window as
	// minutes after local midnight.
	WindowStartMin *int
	WindowEndMin   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Archived reports whether the activity has been archived.
func (a *Activity) Archived() bool {
	return a.ArchivedAt != nil
}

// Validate checks that the fields required by the activity's policy are
// present and consistent. Upstream callers run this before persisting.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return errors.New("activity name is required")
	}
	switch a.Policy {
	case PolicyStrict:
		if a.StartTime == nil || a.EndTime == nil {
			return errors.New("strict activity requires start and end times")
		}
		if !a.EndTime.After(*a.StartTime) {
			return errors.New("strict activity end must be after start")
		}
	case PolicyFlexible:
		if a.MaxFrequencyDays != nil && *a.MaxFrequencyDays <= 0 {
			return errors.New("flexible activity frequency must be positive")
		}
	case PolicyDeadline:
		if a.Deadline == nil {
			return errors.New("deadline activity requires a deadline")
		}
	case PolicyRecurringStrict:
		if a.Recurrence == nil {
			return errors.New("recurring activity requires a recurrence rule")
		}
		if err := a.Recurrence.Validate(); err != nil {
			return fmt.Errorf("recurrence rule: %w", err)
		}
		if a.WindowStartMin == nil || a.WindowEndMin == nil {
			return errors.New("recurring activity requires an occurrence window")
		}
		if *a.WindowEndMin <= *a.WindowStartMin {
			return errors.New("occurrence window end must be after start")
		}
	default:
		return fmt.Errorf("unknown schedule policy %q", a.Policy)
	}
	return nil
}

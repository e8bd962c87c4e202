package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ActivityOption customizes a fixture activity.
type ActivityOption func(*domain.Activity)

func WithDescription(desc string) ActivityOption {
	return func(a *domain.Activity) { a.Description = desc }
}

func WithArchivedAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) { a.ArchivedAt = &t }
}

func newActivity(name string, policy domain.SchedulePolicy, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC().Truncate(time.Second)
	a := &domain.Activity{
		ID:        uuid.New().String(),
		Name:      name,
		Policy:    policy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewStrictActivity builds a strict activity with the given fixed window.
func NewStrictActivity(name string, start, end time.Time, opts ...ActivityOption) *domain.Activity {
	a := newActivity(name, domain.PolicyStrict, opts...)
	a.StartTime = &start
	a.EndTime = &end
	return a
}

// NewFlexibleActivity builds a flexible activity repeating every freqDays.
func NewFlexibleActivity(name string, freqDays int, opts ...ActivityOption) *domain.Activity {
	a := newActivity(name, domain.PolicyFlexible, opts...)
	if freqDays > 0 {
		a.MaxFrequencyDays = &freqDays
	}
	return a
}

// NewDeadlineActivity builds a deadline activity due at the given instant.
func NewDeadlineActivity(name string, deadline time.Time, opts ...ActivityOption) *domain.Activity {
	a := newActivity(name, domain.PolicyDeadline, opts...)
	a.Deadline = &deadline
	return a
}

// NewRecurringActivity builds a recurring-strict activity with the rule and
// a daily window given as minutes after midnight.
func NewRecurringActivity(name string, rule *domain.RecurrenceRule, windowStartMin, windowEndMin int, opts ...ActivityOption) *domain.Activity {
	a := newActivity(name, domain.PolicyRecurringStrict, opts...)
	a.Recurrence = rule
	a.WindowStartMin = &windowStartMin
	a.WindowEndMin = &windowEndMin
	return a
}

// NewTestProfile returns a UTC profile with defaults suitable for tests.
func NewTestProfile() *domain.UserProfile {
	p := domain.DefaultProfile()
	p.Timezone = "UTC"
	return p
}

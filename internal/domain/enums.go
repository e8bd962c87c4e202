package domain

// SchedulePolicy determines how an activity's suggestions are generated and
// whether the reconciler may relocate them.
type SchedulePolicy string

const (
	// PolicyStrict is a fixed start/end instant. Never relocated.
	PolicyStrict SchedulePolicy = "strict"
	// PolicyFlexible recurs at most every N days with no fixed time.
	// The only policy the reconciler may relocate.
	PolicyFlexible SchedulePolicy = "flexible"
	// PolicyDeadline must occur before an instant. Never relocated.
	PolicyDeadline SchedulePolicy = "deadline"
	// PolicyRecurringStrict is rule-based recurrence with a daily time window.
	// Never relocated.
	PolicyRecurringStrict SchedulePolicy = "recurring_strict"
)

// ValidSchedulePolicies is the canonical set of accepted policy strings.
var ValidSchedulePolicies = map[string]bool{
	"strict": true, "flexible": true, "deadline": true, "recurring_strict": true,
}

// Relocatable reports whether the reconciler is allowed to move suggestions
// generated under this policy. Strict, deadline and recurring-strict times
// are authoritative.
func (p SchedulePolicy) Relocatable() bool {
	return p == PolicyFlexible
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyUpcoming Urgency = "upcoming"
	UrgencyOverdue  Urgency = "overdue"
)

type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"DAILY": true, "WEEKLY": true, "MONTHLY": true, "YEARLY": true,
}

// EventKind discriminates the two halves of the agenda union view.
type EventKind string

const (
	KindExisting   EventKind = "existing"
	KindSuggestion EventKind = "suggestion"
)

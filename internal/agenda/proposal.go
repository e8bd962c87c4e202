// Package agenda provides the read-only, timezone-normalized view that
// unifies existing calendar events with reconciled suggestions, and the
// batch committer that turns accepted suggestions into remote events.
package agenda

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Event is the common read-only view over both halves of the agenda union.
// All instants are already normalized into the user's timezone.
type Event struct {
	Title       string
	Start       time.Time
	End         time.Time
	Kind        domain.EventKind
	Policy      domain.SchedulePolicy // empty for existing events
	Confidence  domain.Confidence     // empty for existing events
	Urgency     domain.Urgency
	HasConflict bool
	Avoided     bool
	Source      string // calendar name for existing events
	Notes       []string
}

// Conflicted reports whether the event carries a conflict flag.
func (e Event) Conflicted() bool {
	return e.HasConflict
}

// Summary aggregates the proposal for caller-facing alerts and reports.
type Summary struct {
	TotalEvents      int
	ExistingCount    int
	SuggestionCount  int
	ByPolicy         map[domain.SchedulePolicy]int
	ConflictsFlagged int
	ConflictsAvoided int
	Urgent           []Event
}

// Proposal wraps one reconciliation result. It is computed fresh per call
// and memoizes its derived views within the instance only.
type Proposal struct {
	loc         *time.Location
	existing    []domain.ExistingEvent
	suggestions []domain.Suggestion

	all    []Event
	byDate map[string][]Event
}

// NewProposal builds a proposal over the reconciled suggestion list and the
// raw existing events, normalizing every instant into loc.
func NewProposal(existing []domain.ExistingEvent, suggestions []domain.Suggestion, loc *time.Location) *Proposal {
	return &Proposal{loc: loc, existing: existing, suggestions: suggestions}
}

// Suggestions returns the reconciled suggestion list unchanged.
func (p *Proposal) Suggestions() []domain.Suggestion {
	return p.suggestions
}

// AllEvents merges both sides, normalized and stable-sorted ascending by
// start.
func (p *Proposal) AllEvents() []Event {
	if p.all != nil {
		return p.all
	}

	events := make([]Event, 0, len(p.existing)+len(p.suggestions))
	for _, ev := range p.existing {
		events = append(events, Event{
			Title:  ev.Summary,
			Start:  ev.Start.In(p.loc),
			End:    ev.End.In(p.loc),
			Kind:   domain.KindExisting,
			Source: domain.CoalesceStr(ev.CalendarName, ev.CalendarID),
		})
	}
	for _, s := range p.suggestions {
		events = append(events, Event{
			Title:       s.Title,
			Start:       s.Start.In(p.loc),
			End:         s.End.In(p.loc),
			Kind:        domain.KindSuggestion,
			Policy:      s.Policy,
			Confidence:  s.Confidence,
			Urgency:     s.Urgency,
			HasConflict: s.HasConflict,
			Avoided:     s.ConflictAvoided,
			Notes:       s.Notes,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	p.all = events
	return events
}

// EventsByDate groups the merged view by local calendar date. Keys use the
// 2006-01-02 layout.
func (p *Proposal) EventsByDate() map[string][]Event {
	if p.byDate != nil {
		return p.byDate
	}

	grouped := make(map[string][]Event)
	for _, e := range p.AllEvents() {
		key := e.Start.Format("2006-01-02")
		grouped[key] = append(grouped[key], e)
	}

	p.byDate = grouped
	return grouped
}

// Dates returns the group keys in ascending order.
func (p *Proposal) Dates() []string {
	grouped := p.EventsByDate()
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summarize counts the proposal by kind, policy and conflict flags, and
// collects the urgent subset.
func (p *Proposal) Summarize() Summary {
	s := Summary{ByPolicy: make(map[domain.SchedulePolicy]int)}
	for _, e := range p.AllEvents() {
		s.TotalEvents++
		switch e.Kind {
		case domain.KindExisting:
			s.ExistingCount++
		case domain.KindSuggestion:
			s.SuggestionCount++
			s.ByPolicy[e.Policy]++
			if e.HasConflict {
				s.ConflictsFlagged++
			}
			if e.Avoided {
				s.ConflictsAvoided++
			}
			if e.Urgency == domain.UrgencyUpcoming || e.Urgency == domain.UrgencyOverdue {
				s.Urgent = append(s.Urgent, e)
			}
		}
	}
	return s
}

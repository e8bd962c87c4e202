package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Options are the caller-supplied scheduling knobs, typically derived from
// the user profile.
type Options struct {
	WorkdayStartHour     int
	WorkdayEndHour       int
	PreferredDurationMin int
	BufferMin            int
	ExcludeWeekends      bool
}

// OptionsFromProfile copies the scheduling knobs out of a profile.
func OptionsFromProfile(p *domain.UserProfile) Options {
	return Options{
		WorkdayStartHour:     p.WorkdayStartHour,
		WorkdayEndHour:       p.WorkdayEndHour,
		PreferredDurationMin: p.PreferredDurationMin,
		BufferMin:            p.BufferMin,
		ExcludeWeekends:      p.ExcludeWeekends,
	}
}

const (
	defaultFrequencyDays = 7
	exerciseStartHour    = 7
	eveningStartHour     = 19

	// Flexible occurrences landing on the same day are staggered by half-hour
	// steps, wrapping after a two-hour window.
	staggerStepMin = 30
	staggerWrap    = 4
)

// Generator turns activities into candidate suggestions within a date range.
// All instants it produces are in the user's location.
type Generator struct {
	clock Clock
	loc   *time.Location
	opts  Options

	// flexibleSeen counts flexible placements per calendar day within one
	// GenerateAll pass, driving the stagger offset.
	flexibleSeen map[string]int
}

// NewGenerator creates a Generator for one reconciliation pass.
func NewGenerator(clock Clock, loc *time.Location, opts Options) *Generator {
	if opts.PreferredDurationMin <= 0 {
		opts.PreferredDurationMin = 60
	}
	if opts.WorkdayStartHour <= 0 {
		opts.WorkdayStartHour = 9
	}
	if opts.WorkdayEndHour <= opts.WorkdayStartHour {
		opts.WorkdayEndHour = 17
	}
	return &Generator{
		clock:        clock,
		loc:          loc,
		opts:         opts,
		flexibleSeen: make(map[string]int),
	}
}

// GenerateAll produces candidates for every activity, in activity order.
// Archived activities are skipped.
func (g *Generator) GenerateAll(activities []*domain.Activity, rng domain.DateRange) []domain.Suggestion {
	var out []domain.Suggestion
	for _, a := range activities {
		if a.Archived() {
			continue
		}
		out = append(out, g.Generate(a, rng)...)
	}
	return out
}

// Generate produces the ordered candidate list for a single activity.
func (g *Generator) Generate(a *domain.Activity, rng domain.DateRange) []domain.Suggestion {
	switch a.Policy {
	case domain.PolicyStrict:
		return g.generateStrict(a, rng)
	case domain.PolicyFlexible:
		return g.generateFlexible(a, rng)
	case domain.PolicyDeadline:
		return g.generateDeadline(a, rng)
	case domain.PolicyRecurringStrict:
		return g.generateRecurring(a, rng)
	default:
		return nil
	}
}

// generateStrict emits a single suggestion at the activity's fixed window,
// clipped to the range. A window entirely outside the range produces nothing.
func (g *Generator) generateStrict(a *domain.Activity, rng domain.DateRange) []domain.Suggestion {
	start := a.StartTime.In(g.loc)
	end := a.EndTime.In(g.loc)

	rangeStart := g.midnight(rng.Start)
	rangeEnd := g.midnight(rng.End).AddDate(0, 0, 1)
	if !start.Before(rangeEnd) || !end.After(rangeStart) {
		return nil
	}
	if start.Before(rangeStart) {
		start = rangeStart
	}
	if end.After(rangeEnd) {
		end = rangeEnd
	}

	s := g.newSuggestion(a, a.Name, start, end, domain.ConfidenceHigh)
	return []domain.Suggestion{s}
}

// generateDeadline emits exactly one suggestion ahead of the deadline,
// offset by urgency tier and clipped into the range.
func (g *Generator) generateDeadline(a *domain.Activity, rng domain.DateRange) []domain.Suggestion {
	now := g.clock.Now().In(g.loc)
	deadline := a.Deadline.In(g.loc)

	today := domain.DateOf(now)
	deadlineDay := domain.DateOf(deadline)
	daysLeft := int(deadlineDay.Sub(today).Hours() / 24)

	var target time.Time
	switch {
	case daysLeft <= 2:
		target = deadlineDay
	case daysLeft <= 7:
		target = deadlineDay.AddDate(0, 0, -1)
	default:
		target = deadlineDay.AddDate(0, 0, -3)
	}

	if target.Before(rng.Start) {
		target = rng.Start
	}
	if target.After(rng.End) {
		target = rng.End
	}

	start := g.at(target, g.opts.WorkdayStartHour*60)
	start = g.clampToPresent(start)
	end := start.Add(time.Duration(g.opts.PreferredDurationMin) * time.Minute)

	s := g.newSuggestion(a, "Complete: "+a.Name, start, end, domain.ConfidenceHigh)
	if deadline.Before(now) {
		s.Urgency = domain.UrgencyOverdue
		s.AddNote(fmt.Sprintf("Deadline passed %s", deadline.Format("Mon Jan 2 15:04")))
	} else {
		s.Urgency = domain.UrgencyUpcoming
		s.AddNote(fmt.Sprintf("Due %s", deadline.Format("Mon Jan 2 15:04")))
	}
	return []domain.Suggestion{s}
}

// generateFlexible repeats the activity every max-frequency days across the
// range, choosing a time of day from the activity's name and staggering
// same-day placements.
func (g *Generator) generateFlexible(a *domain.Activity, rng domain.DateRange) []domain.Suggestion {
	step := domain.IntFromPtrWithDefault(defaultFrequencyDays, a.MaxFrequencyDays)
	baseMin := g.preferredStartMin(a.Name)
	dur := time.Duration(g.opts.PreferredDurationMin) * time.Minute

	var out []domain.Suggestion
	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, step) {
		day := d
		if g.opts.ExcludeWeekends {
			for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				day = day.AddDate(0, 0, 1)
			}
			if day.After(rng.End) {
				break
			}
		}

		key := day.Format("2006-01-02")
		stagger := (g.flexibleSeen[key] % staggerWrap) * staggerStepMin
		g.flexibleSeen[key]++

		start := g.at(day, baseMin+stagger)
		start = g.clampToPresent(start)
		end := start.Add(dur)

		s := g.newSuggestion(a, a.Name, start, end, domain.ConfidenceMedium)
		if step == 1 {
			s.AddNote("Daily")
		} else {
			s.AddNote(fmt.Sprintf("Repeats every %d days", step))
		}
		out = append(out, s)
	}
	return out
}

// generateRecurring emits one suggestion per rule-matching date, at the
// activity's daily occurrence window.
func (g *Generator) generateRecurring(a *domain.Activity, rng domain.DateRange) []domain.Suggestion {
	var out []domain.Suggestion
	rng.EachDay(func(d time.Time) bool {
		if !Matches(d, a.Recurrence) {
			return true
		}
		start := g.at(d, *a.WindowStartMin)
		end := g.at(d, *a.WindowEndMin)
		out = append(out, g.newSuggestion(a, a.Name, start, end, domain.ConfidenceHigh))
		return true
	})
	return out
}

// preferredStartMin picks a time of day (minutes after midnight) from the
// activity's name: work-like names land at the start of work hours, physical
// exercise early morning, everything else in the evening.
func (g *Generator) preferredStartMin(name string) int {
	n := strings.ToLower(name)
	for _, kw := range []string{"gym", "run", "jog", "workout", "exercise", "yoga", "swim", "bike", "walk", "stretch"} {
		if strings.Contains(n, kw) {
			return exerciseStartHour * 60
		}
	}
	for _, kw := range []string{"work", "meeting", "email", "review", "report", "call", "plan", "study", "write"} {
		if strings.Contains(n, kw) {
			return g.opts.WorkdayStartHour * 60
		}
	}
	return eveningStartHour * 60
}

// clampToPresent enforces the lower bound "now plus buffer, rounded up to the
// next half hour" when the slot falls on the current day.
func (g *Generator) clampToPresent(start time.Time) time.Time {
	now := g.clock.Now().In(g.loc)
	if !domain.DateOf(start).Equal(domain.DateOf(now)) {
		return start
	}
	floor := roundUpToHalfHour(now.Add(time.Duration(g.opts.BufferMin) * time.Minute))
	if start.Before(floor) {
		return floor
	}
	return start
}

// roundUpToHalfHour advances t to the next :00 or :30 boundary unless it is
// already on one.
func roundUpToHalfHour(t time.Time) time.Time {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		t = t.Truncate(time.Minute).Add(time.Minute)
	}
	if m := t.Minute() % 30; m != 0 {
		t = t.Add(time.Duration(30-m) * time.Minute)
	}
	return t
}

// at builds an instant in the user's location from a normalized date and
// minutes after midnight.
func (g *Generator) at(date time.Time, minOfDay int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minOfDay/60, minOfDay%60, 0, 0, g.loc)
}

// midnight maps a normalized date to local midnight.
func (g *Generator) midnight(date time.Time) time.Time {
	return g.at(date, 0)
}

func (g *Generator) newSuggestion(a *domain.Activity, title string, start, end time.Time, conf domain.Confidence) domain.Suggestion {
	return domain.Suggestion{
		ID:          uuid.NewString(),
		ActivityID:  a.ID,
		Title:       title,
		Description: a.Description,
		Start:       start,
		End:         end,
		Policy:      a.Policy,
		Confidence:  conf,
		Urgency:     domain.UrgencyNone,
	}
}

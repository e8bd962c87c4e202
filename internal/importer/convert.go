package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/domain"
)

var weekdayNames = map[string]time.Weekday{
	"SU": time.Sunday, "MO": time.Monday, "TU": time.Tuesday, "WE": time.Wednesday,
	"TH": time.Thursday, "FR": time.Friday, "SA": time.Saturday,
}

// ParseWeekdays parses a comma-separated weekday list such as "MO,WE,FR".
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, tok := range strings.Split(s, ",") {
		wd, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(tok))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q (use SU,MO,TU,WE,TH,FR,SA)", tok)
		}
		out = append(out, wd)
	}
	return out, nil
}

// ParseMinOfDay converts "HH:MM" to minutes after midnight.
func ParseMinOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time of day out of range")
	}
	return h*60 + m, nil
}

// Convert turns a validated schema into domain activities with fresh IDs and
// timestamps. Call ValidateImportSchema first; Convert assumes parseable
// fields.
func Convert(schema *ImportSchema) ([]*domain.Activity, error) {
	now := time.Now().UTC()
	out := make([]*domain.Activity, 0, len(schema.Activities))

	for _, in := range schema.Activities {
		a := &domain.Activity{
			ID:          uuid.NewString(),
			Name:        in.Name,
			Description: in.Description,
			Policy:      domain.SchedulePolicy(in.Policy),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		switch a.Policy {
		case domain.PolicyStrict:
			start, err := time.Parse(dateTimeLayout, in.Start)
			if err != nil {
				return nil, fmt.Errorf("activity %q: %w", in.Name, err)
			}
			end, err := time.Parse(dateTimeLayout, in.End)
			if err != nil {
				return nil, fmt.Errorf("activity %q: %w", in.Name, err)
			}
			a.StartTime = &start
			a.EndTime = &end

		case domain.PolicyFlexible:
			if in.Every != nil {
				every := *in.Every
				a.MaxFrequencyDays = &every
			}

		case domain.PolicyDeadline:
			due, err := time.Parse(dateTimeLayout, in.Due)
			if err != nil {
				return nil, fmt.Errorf("activity %q: %w", in.Name, err)
			}
			a.Deadline = &due

		case domain.PolicyRecurringStrict:
			rule, err := convertRecurrence(in.Recurrence)
			if err != nil {
				return nil, fmt.Errorf("activity %q: %w", in.Name, err)
			}
			a.Recurrence = rule

			ws, err := ParseMinOfDay(in.WindowStart)
			if err != nil {
				return nil, fmt.Errorf("activity %q: window_start: %w", in.Name, err)
			}
			we, err := ParseMinOfDay(in.WindowEnd)
			if err != nil {
				return nil, fmt.Errorf("activity %q: window_end: %w", in.Name, err)
			}
			a.WindowStartMin = &ws
			a.WindowEndMin = &we
		}

		out = append(out, a)
	}

	return out, nil
}

func convertRecurrence(in *RecurrenceImport) (*domain.RecurrenceRule, error) {
	anchor, err := time.Parse(dateLayout, in.Start)
	if err != nil {
		return nil, err
	}

	rule := &domain.RecurrenceRule{
		Frequency:   domain.Frequency(strings.ToUpper(in.Freq)),
		Interval:    in.Interval,
		ByMonthDays: in.MonthDays,
		BySetPos:    in.SetPos,
		StartDate:   domain.DateOf(anchor),
	}

	if in.Weekdays != "" {
		wd, err := ParseWeekdays(in.Weekdays)
		if err != nil {
			return nil, err
		}
		rule.ByWeekdays = wd
	}
	if in.End != "" {
		until, err := time.Parse(dateLayout, in.End)
		if err != nil {
			return nil, err
		}
		u := domain.DateOf(until)
		rule.EndDate = &u
	}
	return rule, nil
}

package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ValidateImportSchema checks structural requirements: names, known
// policies, and parseable dates. Semantic checks (window ordering, rule
// consistency) are left to domain validation during the import itself.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Activities) == 0 {
		return []error{fmt.Errorf("import file contains no activities")}
	}

	for i, a := range schema.Activities {
		where := fmt.Sprintf("activities[%d]", i)
		if a.Name != "" {
			where = fmt.Sprintf("activity %q", a.Name)
		}

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if !domain.ValidSchedulePolicies[a.Policy] {
			errs = append(errs, fmt.Errorf("%s: unknown policy %q", where, a.Policy))
			continue
		}

		switch domain.SchedulePolicy(a.Policy) {
		case domain.PolicyStrict:
			errs = append(errs, checkDateTime(where, "start", a.Start, true)...)
			errs = append(errs, checkDateTime(where, "end", a.End, true)...)
		case domain.PolicyDeadline:
			errs = append(errs, checkDateTime(where, "due", a.Due, true)...)
		case domain.PolicyRecurringStrict:
			if a.Recurrence == nil {
				errs = append(errs, fmt.Errorf("%s: recurrence is required", where))
				continue
			}
			if !domain.ValidFrequencies[a.Recurrence.Freq] {
				errs = append(errs, fmt.Errorf("%s: unknown frequency %q", where, a.Recurrence.Freq))
			}
			errs = append(errs, checkDate(where, "recurrence.start", a.Recurrence.Start, true)...)
			errs = append(errs, checkDate(where, "recurrence.end", a.Recurrence.End, false)...)
			if a.Recurrence.Weekdays != "" {
				if _, err := ParseWeekdays(a.Recurrence.Weekdays); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", where, err))
				}
			}
			for _, field := range []struct{ name, val string }{
				{"window_start", a.WindowStart}, {"window_end", a.WindowEnd},
			} {
				if field.val == "" {
					errs = append(errs, fmt.Errorf("%s: %s is required", where, field.name))
				} else if _, err := ParseMinOfDay(field.val); err != nil {
					errs = append(errs, fmt.Errorf("%s: invalid %s %q: %w", where, field.name, field.val, err))
				}
			}
		}
	}

	return errs
}

func checkDateTime(where, field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s: %s is required (YYYY-MM-DD HH:MM)", where, field)}
		}
		return nil
	}
	if _, err := time.Parse(dateTimeLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid %s %q: use YYYY-MM-DD HH:MM", where, field, value)}
	}
	return nil
}

func checkDate(where, field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s: %s is required (YYYY-MM-DD)", where, field)}
		}
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid %s %q: use YYYY-MM-DD", where, field, value)}
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/contract"
)

const dateLayout = "2006-01-02"

// resolveActivityID resolves user input to a full activity ID: exact UUID
// first, then unique UUID prefix, then unique case-insensitive name match.
func resolveActivityID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("activity ID is required")
	}

	activities, err := app.Activities.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, a := range activities {
		if a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	if len(matches) == 0 {
		for _, a := range activities {
			if strings.EqualFold(a.Name, input) {
				matches = append(matches, a.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveRange turns the --from/--to/--days flags into a concrete request
// range. Defaults cover today plus the next six days.
func resolveRange(from, to string, days int) (time.Time, time.Time, error) {
	var start time.Time
	var err error

	if from == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		start, err = time.Parse(dateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
	}

	if to != "" {
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		return start, end, nil
	}

	if days <= 0 {
		days = 7
	}
	return start, start.AddDate(0, 0, days-1), nil
}

func agendaRequestFromFlags(from, to string, days int) (contract.AgendaRequest, error) {
	start, end, err := resolveRange(from, to, days)
	if err != nil {
		return contract.AgendaRequest{}, err
	}
	return contract.NewAgendaRequest(start, end), nil
}

package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// EventInput is the payload handed to the remote calendar for one creation.
type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	CalendarID  string
}

// EventCreator creates one remote calendar event. Implementations own their
// cancellation and timeout behavior; the committer does not retry.
type EventCreator interface {
	CreateEvent(ctx context.Context, in EventInput) (remoteID string, err error)
}

type CommitStatus string

const (
	StatusCreated CommitStatus = "created"
	StatusFailed  CommitStatus = "failed"
	StatusPlanned CommitStatus = "planned" // dry run only
)

// ItemResult records the outcome for a single suggestion, in original
// suggestion order.
type ItemResult struct {
	Suggestion domain.Suggestion
	Status     CommitStatus
	RemoteID   string
	Err        error
}

// CommitResult aggregates a batch. One item's failure never aborts the rest.
type CommitResult struct {
	DryRun   bool
	Created  int
	Failed   int
	Planned  int
	Items    []ItemResult
	Summary  Summary
	NextHint []string
}

// Committer turns accepted suggestions into remote calendar events.
type Committer struct {
	creator    EventCreator
	calendarID string
}

// NewCommitter creates a Committer targeting the given calendar.
func NewCommitter(creator EventCreator, calendarID string) *Committer {
	return &Committer{creator: creator, calendarID: calendarID}
}

// Commit processes every suggestion in the proposal. With dryRun it only
// reports what would be created; otherwise it issues one creation call per
// suggestion, sequentially, recording per-item success or failure.
func (c *Committer) Commit(ctx context.Context, p *Proposal, dryRun bool) CommitResult {
	result := CommitResult{DryRun: dryRun, Summary: p.Summarize()}
	suggestions := p.Suggestions()

	if len(suggestions) == 0 {
		result.NextHint = append(result.NextHint, "Nothing to schedule in this range.")
		return result
	}

	for _, s := range suggestions {
		if dryRun {
			result.Planned++
			result.Items = append(result.Items, ItemResult{Suggestion: s, Status: StatusPlanned})
			continue
		}

		remoteID, err := c.creator.CreateEvent(ctx, EventInput{
			Title:       s.Title,
			Description: s.Description,
			Start:       s.Start,
			End:         s.End,
			CalendarID:  c.calendarID,
		})
		if err != nil {
			result.Failed++
			result.Items = append(result.Items, ItemResult{Suggestion: s, Status: StatusFailed, Err: err})
			continue
		}
		result.Created++
		result.Items = append(result.Items, ItemResult{Suggestion: s, Status: StatusCreated, RemoteID: remoteID})
	}

	result.NextHint = c.hints(result)
	return result
}

func (c *Committer) hints(r CommitResult) []string {
	var hints []string
	if r.DryRun {
		hints = append(hints, fmt.Sprintf("%d event(s) would be created. Re-run without --dry-run to commit.", r.Planned))
		if r.Summary.ConflictsFlagged > 0 {
			hints = append(hints, fmt.Sprintf("%d suggestion(s) still conflict with existing events; review before committing.", r.Summary.ConflictsFlagged))
		}
		return hints
	}
	if r.Failed > 0 {
		hints = append(hints, fmt.Sprintf("%d of %d creations failed; the rest were committed.", r.Failed, r.Created+r.Failed))
	} else {
		hints = append(hints, fmt.Sprintf("All %d event(s) created.", r.Created))
	}
	if len(r.Summary.Urgent) > 0 {
		hints = append(hints, fmt.Sprintf("%d urgent item(s) need attention.", len(r.Summary.Urgent)))
	}
	return hints
}

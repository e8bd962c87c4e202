package contract

import (
	"time"

	"github.com/alexanderramin/cadence/internal/agenda"
)

// CommitRequest asks for the suggestions in a range to be pushed to the
// remote calendar, or previewed when DryRun is set.
type CommitRequest struct {
	From   time.Time
	To     time.Time
	Now    *time.Time
	DryRun bool
}

// CommitResponse wraps the committer's batch result together with the agenda
// it was computed from.
type CommitResponse struct {
	GeneratedAt time.Time
	Agenda      *AgendaResponse
	Result      agenda.CommitResult
}

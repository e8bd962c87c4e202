package contract

import (
	"time"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

// AgendaRequest asks for a reconciled agenda over a date range.
type AgendaRequest struct {
	From time.Time
	To   time.Time
	// Now overrides the wall clock, mainly for tests and previews.
	Now             *time.Time
	IncludeArchived bool
}

// NewAgendaRequest builds a request covering [from, to].
func NewAgendaRequest(from, to time.Time) AgendaRequest {
	return AgendaRequest{From: from, To: to}
}

// AgendaResponse is the caller-facing result of one reconciliation pass.
type AgendaResponse struct {
	GeneratedAt time.Time
	Range       domain.DateRange
	Timezone    string
	Proposal    *agenda.Proposal
	Summary     agenda.Summary
	// Warnings carries degrade-gracefully notices, e.g. an unreachable
	// calendar source.
	Warnings []string
}

type AgendaErrorCode string

const (
	ErrMissingTimezone AgendaErrorCode = "MISSING_TIMEZONE"
	ErrInvalidTimezone AgendaErrorCode = "INVALID_TIMEZONE"
	ErrInvalidRange    AgendaErrorCode = "INVALID_RANGE"
	ErrNoActivities    AgendaErrorCode = "NO_ACTIVITIES"
)

// AgendaError is a configuration-level failure that prevents any output.
type AgendaError struct {
	Code    AgendaErrorCode
	Message string
}

func (e *AgendaError) Error() string {
	return string(e.Code) + ": " + e.Message
}

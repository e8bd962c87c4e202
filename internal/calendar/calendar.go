// Package calendar is the boundary to the user's remote calendar provider.
// The scheduler core only sees the EventSource and EventCreator contracts;
// the CalDAV client here is one implementation of them.
package calendar

import (
	"context"

	"github.com/alexanderramin/cadence/internal/domain"
)

// EventSource lists the user's pre-existing commitments in a date range.
// Instants returned must be timezone-aware. An empty result is valid: the
// caller proceeds with zero existing events.
type EventSource interface {
	Events(ctx context.Context, rng domain.DateRange) ([]domain.ExistingEvent, error)
}

// NoSource is an EventSource for users with no connected calendar.
type NoSource struct{}

func (NoSource) Events(context.Context, domain.DateRange) ([]domain.ExistingEvent, error) {
	return nil, nil
}

package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FakeEventSource serves a fixed event list, or fails when Err is set.
type FakeEventSource struct {
	EventList []domain.ExistingEvent
	Err       error
	Calls     int
}

func (f *FakeEventSource) Events(_ context.Context, rng domain.DateRange) ([]domain.ExistingEvent, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	var out []domain.ExistingEvent
	for _, ev := range f.EventList {
		if rng.Contains(ev.Start) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// FakeEventCreator records created events and can fail selected titles.
type FakeEventCreator struct {
	mu         sync.Mutex
	FailTitles map[string]bool
	Created    []agenda.EventInput
}

func (f *FakeEventCreator) CreateEvent(_ context.Context, in agenda.EventInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailTitles[in.Title] {
		return "", fmt.Errorf("creation rejected for %q", in.Title)
	}
	f.Created = append(f.Created, in)
	return fmt.Sprintf("remote-%d", len(f.Created)), nil
}

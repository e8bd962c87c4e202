package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/scheduler"
)

type agendaService struct {
	activities repository.ActivityRepo
	profiles   repository.ProfileRepo
	source     calendar.EventSource
	clock      scheduler.Clock
}

// NewAgendaService wires the reconciliation pipeline: generate per activity,
// filter against existing events, wrap as a proposal.
func NewAgendaService(
	activities repository.ActivityRepo,
	profiles repository.ProfileRepo,
	source calendar.EventSource,
	clock scheduler.Clock,
) AgendaService {
	if clock == nil {
		clock = scheduler.SystemClock{}
	}
	if source == nil {
		source = calendar.NoSource{}
	}
	return &agendaService{activities: activities, profiles: profiles, source: source, clock: clock}
}

func (s *agendaService) Propose(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	// Configuration errors fail fast, before any computation.
	loc, err := profile.Location()
	if err != nil {
		code := contract.ErrInvalidTimezone
		if profile.Timezone == "" {
			code = contract.ErrMissingTimezone
		}
		return nil, &contract.AgendaError{Code: code, Message: err.Error()}
	}

	rng, err := domain.NewDateRange(req.From, req.To)
	if err != nil {
		return nil, &contract.AgendaError{Code: contract.ErrInvalidRange, Message: err.Error()}
	}

	clock := s.clock
	if req.Now != nil {
		clock = scheduler.FixedClock{T: *req.Now}
	}

	activities, err := s.activities.List(ctx, req.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	if len(activities) == 0 {
		// An empty database is a setup problem; a range where nothing lands,
		// or an all-archived list, still yields an (empty) agenda.
		if all, listErr := s.activities.List(ctx, true); listErr == nil && len(all) == 0 {
			return nil, &contract.AgendaError{
				Code:    contract.ErrNoActivities,
				Message: `no activities yet; add one with "cadence activity add"`,
			}
		}
	}

	var warnings []string

	// An unreachable calendar degrades to zero existing events: the agenda
	// is still produced, just without conflict awareness.
	existing, err := s.source.Events(ctx, rng)
	if err != nil {
		existing = nil
		warnings = append(warnings, fmt.Sprintf(
			"Calendar unavailable (%s); proceeding without existing events.", trimErr(err)))
	}

	gen := scheduler.NewGenerator(clock, loc, scheduler.OptionsFromProfile(profile))
	candidates := gen.GenerateAll(activities, rng)

	rec := scheduler.NewReconciler(clock, loc, profile.BufferMin)
	kept := rec.Reconcile(candidates, existing)

	proposal := agenda.NewProposal(existing, kept, loc)
	summary := proposal.Summarize()

	if dropped := len(candidates) - len(kept); dropped > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d suggestion(s) could not be scheduled and were dropped.", dropped))
	}

	return &contract.AgendaResponse{
		GeneratedAt: clock.Now(),
		Range:       rng,
		Timezone:    profile.Timezone,
		Proposal:    proposal,
		Summary:     summary,
		Warnings:    warnings,
	}, nil
}

func trimErr(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/contract"
)

// ErrNoCalendar is returned on a live commit when no remote calendar is
// configured. Dry runs still work.
var ErrNoCalendar = errors.New("no remote calendar configured; add caldav credentials to the config file")

type commitService struct {
	agendas    AgendaService
	creator    agenda.EventCreator
	calendarID string
}

// NewCommitService builds the commit pipeline on top of the agenda service:
// a commit is always computed from a fresh proposal for the requested range.
func NewCommitService(agendas AgendaService, creator agenda.EventCreator, calendarID string) CommitService {
	return &commitService{agendas: agendas, creator: creator, calendarID: calendarID}
}

func (s *commitService) Commit(ctx context.Context, req contract.CommitRequest) (*contract.CommitResponse, error) {
	if s.creator == nil && !req.DryRun {
		return nil, ErrNoCalendar
	}

	agendaReq := contract.NewAgendaRequest(req.From, req.To)
	agendaReq.Now = req.Now

	resp, err := s.agendas.Propose(ctx, agendaReq)
	if err != nil {
		return nil, err
	}

	committer := agenda.NewCommitter(s.creator, s.calendarID)
	result := committer.Commit(ctx, resp.Proposal, req.DryRun)

	return &contract.CommitResponse{
		GeneratedAt: resp.GeneratedAt,
		Agenda:      resp,
		Result:      result,
	}, nil
}

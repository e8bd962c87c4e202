package service

import (
	"context"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

type AgendaService interface {
	Propose(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error)
}

type CommitService interface {
	Commit(ctx context.Context, req contract.CommitRequest) (*contract.CommitResponse, error)
}

// ImportResult reports what one batch import created.
type ImportResult struct {
	Created int
	Names   []string
}

type ImportService interface {
	// ImportFile loads a YAML activity batch and creates all of it, or
	// nothing when any entry fails.
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

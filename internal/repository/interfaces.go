package repository

import (
	"context"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

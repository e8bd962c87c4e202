package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
}

// NewActivityService creates the CRUD service for activities.
func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validating activity: %w", err)
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return s.activities.Create(ctx, a)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context, includeArchived bool) ([]*domain.Activity, error) {
	return s.activities.List(ctx, includeArchived)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validating activity: %w", err)
	}
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Archive(ctx context.Context, id string) error {
	return s.activities.Archive(ctx, id)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

type profileService struct {
	profiles repository.ProfileRepo
}

// NewProfileService creates the profile service.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating profile: %w", err)
	}
	return s.profiles.Save(ctx, p)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

func setupActivityService(t *testing.T) ActivityService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewActivityService(repository.NewSQLiteActivityRepo(db))
}

func TestActivityService_CreateAssignsIDAndTimestamps(t *testing.T) {
	svc := setupActivityService(t)
	ctx := context.Background()

	a := testutil.NewFlexibleActivity("Water the plants", 3)
	a.ID = ""
	a.CreatedAt = time.Time{}
	a.UpdatedAt = time.Time{}
	require.NoError(t, svc.Create(ctx, a))

	assert.NotEmpty(t, a.ID, "service should assign a UUID")
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.UpdatedAt.IsZero())
}

func TestActivityService_CreateRejectsInvalid(t *testing.T) {
	svc := setupActivityService(t)

	a := &domain.Activity{Name: "No policy set"}
	err := svc.Create(context.Background(), a)
	require.Error(t, err)
}

func TestActivityService_CreateRejectsIncompleteStrict(t *testing.T) {
	svc := setupActivityService(t)

	a := &domain.Activity{Name: "Dentist", Policy: domain.PolicyStrict}
	err := svc.Create(context.Background(), a)
	require.Error(t, err, "strict activity without a fixed window must be rejected")
}

func TestActivityService_ListExcludesArchivedByDefault(t *testing.T) {
	svc := setupActivityService(t)
	ctx := context.Background()

	keep := testutil.NewFlexibleActivity("Keep", 2)
	gone := testutil.NewFlexibleActivity("Gone", 2, testutil.WithArchivedAt(time.Now().UTC()))
	require.NoError(t, svc.Create(ctx, keep))
	require.NoError(t, svc.Create(ctx, gone))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Keep", active[0].Name)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActivityService_UpdateValidatesAndBumpsTimestamp(t *testing.T) {
	svc := setupActivityService(t)
	ctx := context.Background()

	a := testutil.NewFlexibleActivity("Journal", 1)
	require.NoError(t, svc.Create(ctx, a))
	created := a.UpdatedAt

	a.Description = "Ten minutes before bed"
	require.NoError(t, svc.Update(ctx, a))
	assert.False(t, a.UpdatedAt.Before(created))

	a.Policy = domain.PolicyStrict // now missing its window
	require.Error(t, svc.Update(ctx, a))
}

func TestActivityService_ArchiveThenGet(t *testing.T) {
	svc := setupActivityService(t)
	ctx := context.Background()

	a := testutil.NewFlexibleActivity("Tidy desk", 7)
	require.NoError(t, svc.Create(ctx, a))
	require.NoError(t, svc.Archive(ctx, a.ID))

	fetched, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Archived())
}

func TestActivityService_GetByIDNotFound(t *testing.T) {
	svc := setupActivityService(t)

	_, err := svc.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_SaveValidates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteProfileRepo(db))
	ctx := context.Background()

	p := testutil.NewTestProfile()
	p.Timezone = "not-a-zone"
	require.Error(t, svc.Save(ctx, p))

	p.Timezone = "Europe/Berlin"
	require.NoError(t, svc.Save(ctx, p))

	fetched, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", fetched.Timezone)
}

func TestProfileService_GetReturnsDefaultsWhenUnset(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteProfileRepo(db))

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileID, p.ID)
	assert.Empty(t, p.Timezone)
	assert.Equal(t, 9, p.WorkdayStartHour)
}

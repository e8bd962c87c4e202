package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

// testNow is a Sunday morning; the default request range covers the week
// that follows.
var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func setupAgendaService(t *testing.T, source *testutil.FakeEventSource) (AgendaService, repository.ActivityRepo, repository.ProfileRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	activityRepo := repository.NewSQLiteActivityRepo(db)
	profileRepo := repository.NewSQLiteProfileRepo(db)
	require.NoError(t, profileRepo.Save(context.Background(), testutil.NewTestProfile()))
	return NewAgendaService(activityRepo, profileRepo, source, nil), activityRepo, profileRepo
}

func weekRequest() contract.AgendaRequest {
	req := contract.NewAgendaRequest(
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	)
	req.Now = &testNow
	return req
}

func TestAgendaService_MissingTimezone(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAgendaService(
		repository.NewSQLiteActivityRepo(db),
		repository.NewSQLiteProfileRepo(db), // empty table: defaults, no timezone
		&testutil.FakeEventSource{},
		nil,
	)

	_, err := svc.Propose(context.Background(), weekRequest())
	require.Error(t, err)

	var agErr *contract.AgendaError
	require.ErrorAs(t, err, &agErr)
	assert.Equal(t, contract.ErrMissingTimezone, agErr.Code)
}

func TestAgendaService_InvalidTimezone(t *testing.T) {
	svc, _, profileRepo := setupAgendaService(t, &testutil.FakeEventSource{})
	ctx := context.Background()

	broken := testutil.NewTestProfile()
	broken.Timezone = "Mars/Olympus"
	require.NoError(t, profileRepo.Save(ctx, broken))

	_, err := svc.Propose(ctx, weekRequest())
	var agErr *contract.AgendaError
	require.ErrorAs(t, err, &agErr)
	assert.Equal(t, contract.ErrInvalidTimezone, agErr.Code)
}

func TestAgendaService_InvalidRange(t *testing.T) {
	svc, _, _ := setupAgendaService(t, &testutil.FakeEventSource{})

	req := contract.NewAgendaRequest(
		time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	)
	req.Now = &testNow

	_, err := svc.Propose(context.Background(), req)
	var agErr *contract.AgendaError
	require.ErrorAs(t, err, &agErr)
	assert.Equal(t, contract.ErrInvalidRange, agErr.Code)
}

func TestAgendaService_NoActivities(t *testing.T) {
	svc, _, _ := setupAgendaService(t, &testutil.FakeEventSource{})

	_, err := svc.Propose(context.Background(), weekRequest())
	var agErr *contract.AgendaError
	require.ErrorAs(t, err, &agErr)
	assert.Equal(t, contract.ErrNoActivities, agErr.Code)
	assert.Contains(t, agErr.Message, "cadence activity add")
}

func TestAgendaService_OutOfRangeActivityStillYieldsAgenda(t *testing.T) {
	svc, activityRepo, _ := setupAgendaService(t, &testutil.FakeEventSource{})
	ctx := context.Background()

	// An activity exists but lands outside the requested week: the agenda is
	// produced, just empty.
	start := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, activityRepo.Create(ctx, testutil.NewStrictActivity("Dentist", start, start.Add(time.Hour))))

	resp, err := svc.Propose(ctx, weekRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Proposal.Suggestions())
}

func TestAgendaService_StrictActivityFlowsThrough(t *testing.T) {
	svc, activityRepo, _ := setupAgendaService(t, &testutil.FakeEventSource{})
	ctx := context.Background()

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	require.NoError(t, activityRepo.Create(ctx, testutil.NewStrictActivity("Dentist", start, end)))

	resp, err := svc.Propose(ctx, weekRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Proposal)
	suggestions := resp.Proposal.Suggestions()
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Dentist", suggestions[0].Title)
	assert.True(t, suggestions[0].Start.Equal(start))
	assert.True(t, suggestions[0].End.Equal(end))
	assert.Equal(t, testNow, resp.GeneratedAt)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Empty(t, resp.Warnings)
}

func TestAgendaService_ArchivedActivitySkipped(t *testing.T) {
	svc, activityRepo, _ := setupAgendaService(t, &testutil.FakeEventSource{})
	ctx := context.Background()

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	a := testutil.NewStrictActivity("Old appointment", start, start.Add(time.Hour),
		testutil.WithArchivedAt(testNow))
	require.NoError(t, activityRepo.Create(ctx, a))

	resp, err := svc.Propose(ctx, weekRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Proposal.Suggestions())
	assert.Equal(t, 0, resp.Summary.SuggestionCount)
}

func TestAgendaService_CalendarUnavailableDegrades(t *testing.T) {
	source := &testutil.FakeEventSource{Err: errors.New("dial tcp: connection refused")}
	svc, activityRepo, _ := setupAgendaService(t, source)
	ctx := context.Background()

	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, activityRepo.Create(ctx, testutil.NewStrictActivity("Dentist", start, start.Add(time.Hour))))

	resp, err := svc.Propose(ctx, weekRequest())
	require.NoError(t, err, "an unreachable calendar must not abort the agenda")

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Calendar unavailable")
	require.Len(t, resp.Proposal.Suggestions(), 1)
	assert.False(t, resp.Proposal.Suggestions()[0].HasConflict)
	assert.Equal(t, 0, resp.Summary.ExistingCount)
}

func TestAgendaService_ExistingEventsMergedIntoProposal(t *testing.T) {
	source := &testutil.FakeEventSource{EventList: []domain.ExistingEvent{{
		Summary: "Team standup",
		Start:   time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		End:     time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC),
	}}}
	svc, activityRepo, _ := setupAgendaService(t, source)
	ctx := context.Background()

	start := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, activityRepo.Create(ctx, testutil.NewStrictActivity("Dentist", start, start.Add(time.Hour))))

	resp, err := svc.Propose(ctx, weekRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, source.Calls)
	assert.Equal(t, 1, resp.Summary.ExistingCount)
	events := resp.Proposal.AllEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Team standup", events[0].Title)
}

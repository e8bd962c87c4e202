package export

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

func testProposal() *agenda.Proposal {
	existing := []domain.ExistingEvent{{
		Summary:      "Team standup",
		Start:        time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		CalendarName: "Work",
	}}
	suggestions := []domain.Suggestion{
		{
			ID:         "s1",
			Title:      "Dentist",
			Start:      time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC),
			Policy:     domain.PolicyStrict,
			Confidence: domain.ConfidenceLow,
			HasConflict: true,
			Notes:      []string{`Conflicts with "Client call"`},
		},
		{
			ID:         "s2",
			Title:      "Read fiction",
			Start:      time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC),
			Policy:     domain.PolicyFlexible,
			Confidence: domain.ConfidenceMedium,
		},
	}
	return agenda.NewProposal(existing, suggestions, time.UTC)
}

func TestICS_SuggestionsOnly(t *testing.T) {
	out := ICS(testProposal(), time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), Options{})

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2, "existing events excluded by default")

	summaries := make(map[string]*ics.VEvent)
	for _, ev := range cal.Events() {
		summaries[ev.GetProperty(ics.ComponentPropertySummary).Value] = ev
	}
	require.Contains(t, summaries, "Dentist")
	require.Contains(t, summaries, "Read fiction")
	assert.NotContains(t, summaries, "Team standup")

	dentist := summaries["Dentist"]
	status := dentist.GetProperty(ics.ComponentPropertyStatus)
	require.NotNil(t, status)
	assert.Equal(t, string(ics.ObjectStatusTentative), status.Value)

	start, err := dentist.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)))
}

func TestICS_IncludeExisting(t *testing.T) {
	out := ICS(testProposal(), time.Now(), Options{IncludeExisting: true, Name: "Cadence agenda"})

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 3)
	assert.Contains(t, out, "X-WR-CALNAME:Cadence agenda")
}

func TestICS_DescriptionCarriesNotes(t *testing.T) {
	out := ICS(testProposal(), time.Now(), Options{})
	assert.Contains(t, out, "Conflicts with")
	assert.Contains(t, out, "Policy: strict")
}

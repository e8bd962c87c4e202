package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
)

func TestParseWeekdays(t *testing.T) {
	wd, err := ParseWeekdays("mo, WE ,fr")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, wd)

	_, err = ParseWeekdays("MO,XX")
	assert.ErrorContains(t, err, "unknown weekday")
}

func TestParseMinOfDay(t *testing.T) {
	min, err := ParseMinOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, 450, min)

	_, err = ParseMinOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseMinOfDay("0730")
	assert.Error(t, err)
}

func TestConvert_AllPolicies(t *testing.T) {
	every := 3
	schema := &ImportSchema{Activities: []ActivityImport{
		{Name: "Dentist", Policy: "strict", Start: "2025-06-03 10:00", End: "2025-06-03 11:00"},
		{Name: "Water the plants", Policy: "flexible", Every: &every},
		{Name: "Submit tax forms", Policy: "deadline", Due: "2025-06-10 15:00"},
		{
			Name:   "Morning pages",
			Policy: "recurring_strict",
			Recurrence: &RecurrenceImport{
				Freq:     "WEEKLY",
				Weekdays: "MO,WE,FR",
				Start:    "2025-06-02",
			},
			WindowStart: "07:00",
			WindowEnd:   "07:30",
		},
	}}

	activities, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, activities, 4)

	for _, a := range activities {
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		require.NoError(t, a.Validate())
	}

	strict := activities[0]
	assert.Equal(t, domain.PolicyStrict, strict.Policy)
	assert.Equal(t, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), *strict.StartTime)

	flexible := activities[1]
	require.NotNil(t, flexible.MaxFrequencyDays)
	assert.Equal(t, 3, *flexible.MaxFrequencyDays)

	recurring := activities[3]
	require.NotNil(t, recurring.Recurrence)
	assert.Equal(t, domain.FreqWeekly, recurring.Recurrence.Frequency)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, recurring.Recurrence.ByWeekdays)
	assert.Equal(t, 420, *recurring.WindowStartMin)
}

func TestValidateImportSchema_ReportsAllProblems(t *testing.T) {
	schema := &ImportSchema{Activities: []ActivityImport{
		{Name: "", Policy: "strict"},
		{Name: "Mystery", Policy: "someday"},
		{Name: "Broken rule", Policy: "recurring_strict", Recurrence: &RecurrenceImport{Freq: "HOURLY", Start: "soon"}},
	}}

	errs := ValidateImportSchema(schema)
	require.NotEmpty(t, errs)

	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, `unknown policy "someday"`)
	assert.Contains(t, joined, `unknown frequency "HOURLY"`)
	assert.Contains(t, joined, "recurrence.start")
	assert.Contains(t, joined, "window_start is required")
}

func TestValidateImportSchema_EmptyFile(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no activities")
}

package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/domain"
)

func TestFormatCommitResult_MixedOutcome(t *testing.T) {
	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	r := agenda.CommitResult{
		Created: 1,
		Failed:  1,
		Items: []agenda.ItemResult{
			{
				Suggestion: domain.Suggestion{Title: "Haircut", Start: start, End: start.Add(time.Hour)},
				Status:     agenda.StatusCreated,
				RemoteID:   "remote-1",
			},
			{
				Suggestion: domain.Suggestion{Title: "Dentist", Start: start, End: start.Add(time.Hour)},
				Status:     agenda.StatusFailed,
				Err:        errors.New("403 forbidden"),
			},
		},
		NextHint: []string{"1 of 2 creations failed; the rest were committed."},
	}

	out := FormatCommitResult(r)
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Haircut")
	assert.Contains(t, out, "403 forbidden")
	assert.Contains(t, out, "1 of 2 creations failed")
}

func TestFormatCommitResult_DryRun(t *testing.T) {
	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	r := agenda.CommitResult{
		DryRun:  true,
		Planned: 1,
		Items: []agenda.ItemResult{{
			Suggestion: domain.Suggestion{Title: "Dentist", Start: start, End: start.Add(time.Hour)},
			Status:     agenda.StatusPlanned,
		}},
	}

	out := FormatCommitResult(r)
	assert.Contains(t, out, "COMMIT PREVIEW")
	assert.Contains(t, out, "planned")
}

func TestFormatCommitResult_EmptyBatchHint(t *testing.T) {
	r := agenda.CommitResult{DryRun: true, NextHint: []string{"Nothing to schedule in this range."}}
	out := FormatCommitResult(r)
	assert.Contains(t, out, "Nothing to schedule in this range.")
}

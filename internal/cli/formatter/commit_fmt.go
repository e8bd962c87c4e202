package formatter

import (
	"strings"

	"github.com/alexanderramin/cadence/internal/agenda"
)

// FormatCommitResult renders the per-item outcome of one commit batch.
func FormatCommitResult(r agenda.CommitResult) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString(Header("Commit preview"))
	} else {
		b.WriteString(Header("Commit"))
	}
	b.WriteString("\n")

	for _, item := range r.Items {
		s := item.Suggestion
		b.WriteString("  ")
		b.WriteString(statusBadge(item.Status))
		b.WriteString("  ")
		b.WriteString(StyleFg.Render(s.Start.Format("Mon Jan 2 15:04")))
		b.WriteString("  ")
		b.WriteString(Truncate(s.Title, 40))
		if item.Err != nil {
			b.WriteString("\n      " + StyleRed.Render(item.Err.Error()))
		}
		b.WriteString("\n")
	}

	if len(r.Items) > 0 {
		b.WriteString("\n")
	}
	for _, hint := range r.NextHint {
		b.WriteString(Dim(hint) + "\n")
	}
	return b.String()
}

func statusBadge(s agenda.CommitStatus) string {
	switch s {
	case agenda.StatusCreated:
		return StyleGreen.Render("✓ created")
	case agenda.StatusFailed:
		return StyleRed.Render("✗ failed ")
	case agenda.StatusPlanned:
		return StyleBlue.Render("· planned")
	default:
		return Dim(string(s))
	}
}

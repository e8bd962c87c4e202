package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatAgenda renders a full agenda response: one section per day, existing
// events and suggestions interleaved in start order, then a summary line.
func FormatAgenda(resp *contract.AgendaResponse) string {
	var b strings.Builder

	title := fmt.Sprintf("Agenda %s – %s",
		resp.Range.Start.Format("Jan 2"), resp.Range.End.Format("Jan 2"))
	b.WriteString(Header(title))
	b.WriteString("\n")

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("⚠ " + w))
		b.WriteString("\n")
	}

	byDate := resp.Proposal.EventsByDate()
	dates := resp.Proposal.Dates()
	if len(dates) == 0 {
		b.WriteString(Dim("Nothing scheduled in this range.") + "\n")
		return b.String()
	}

	for _, key := range dates {
		events := byDate[key]
		b.WriteString("\n")
		b.WriteString(Bold(DayHeading(events[0].Start)))
		b.WriteString("\n")
		for _, ev := range events {
			b.WriteString(EventLine(ev))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatSummaryLine(resp.Summary))
	b.WriteString("\n")
	return b.String()
}

// EventLine renders a single agenda row; shared by the plain output and the
// interactive browser.
func EventLine(ev agenda.Event) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(StyleFg.Render(TimeRange(ev.Start, ev.End)))
	b.WriteString("  ")

	if ev.Kind == domain.KindExisting {
		b.WriteString(Dim(Truncate(ev.Title, 40)))
		if ev.Source != "" {
			b.WriteString(Dim(" (" + ev.Source + ")"))
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleFg.Render(Truncate(ev.Title, 40)))
	b.WriteString(" ")
	b.WriteString(PolicyStyle(ev.Policy).Render("[" + string(ev.Policy) + "]"))
	b.WriteString(" ")
	b.WriteString(ConfidenceStyle(ev.Confidence).Render(string(ev.Confidence)))

	if ev.HasConflict {
		b.WriteString(" " + StyleRed.Render("✗ conflict"))
	}
	if ev.Avoided {
		b.WriteString(" " + StyleGreen.Render("↻ moved"))
	}
	if u := UrgencyIndicator(ev.Urgency); u != "" {
		b.WriteString(" " + u)
	}
	b.WriteString("\n")

	for _, note := range ev.Notes {
		b.WriteString("      " + Dim("· "+note) + "\n")
	}
	return b.String()
}

func formatSummaryLine(s agenda.Summary) string {
	parts := []string{
		Plural(s.SuggestionCount, "suggestion"),
		Plural(s.ExistingCount, "existing event"),
	}
	if s.ConflictsFlagged > 0 {
		parts = append(parts, StyleRed.Render(Plural(s.ConflictsFlagged, "conflict flagged")))
	}
	if s.ConflictsAvoided > 0 {
		parts = append(parts, StyleGreen.Render(Plural(s.ConflictsAvoided, "conflict avoided")))
	}
	if n := len(s.Urgent); n > 0 {
		parts = append(parts, StyleYellow.Render(Plural(n, "urgent item")))
	}
	return Dim(strings.Join(parts, " · "))
}

// FormatActivityList renders the activity table shown by "activity list".
func FormatActivityList(activities []*domain.Activity) string {
	var b strings.Builder
	for _, a := range activities {
		b.WriteString(formatActivityRow(a))
	}
	return b.String()
}

func formatActivityRow(a *domain.Activity) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(Dim(a.ID[:8]))
	b.WriteString("  ")
	b.WriteString(StyleFg.Render(fmt.Sprintf("%-30s", Truncate(a.Name, 30))))
	b.WriteString(" ")
	b.WriteString(PolicyStyle(a.Policy).Render("[" + string(a.Policy) + "]"))

	switch a.Policy {
	case domain.PolicyStrict:
		if a.StartTime != nil && a.EndTime != nil {
			b.WriteString(Dim("  " + a.StartTime.Format("Jan 2 15:04") + "–" + a.EndTime.Format("15:04")))
		}
	case domain.PolicyDeadline:
		if a.Deadline != nil {
			b.WriteString(Dim("  due " + a.Deadline.Format("Jan 2 15:04")))
		}
	case domain.PolicyFlexible:
		days := domain.IntFromPtrWithDefault(7, a.MaxFrequencyDays)
		b.WriteString(Dim(fmt.Sprintf("  every %dd", days)))
	case domain.PolicyRecurringStrict:
		if a.Recurrence != nil {
			b.WriteString(Dim("  " + strings.ToLower(string(a.Recurrence.Frequency))))
		}
	}

	if a.Archived() {
		b.WriteString(" " + Dim("(archived)"))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatProfile renders the stored scheduling profile.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile"))
	b.WriteString("\n")
	tz := p.Timezone
	if tz == "" {
		tz = StyleRed.Render("(not set)")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold("Timezone:"), tz))
	b.WriteString(fmt.Sprintf("  %s %02d:00–%02d:00\n", Bold("Workday:"), p.WorkdayStartHour, p.WorkdayEndHour))
	b.WriteString(fmt.Sprintf("  %s %d min\n", Bold("Preferred duration:"), p.PreferredDurationMin))
	b.WriteString(fmt.Sprintf("  %s %d min\n", Bold("Buffer:"), p.BufferMin))
	b.WriteString(fmt.Sprintf("  %s %v\n", Bold("Exclude weekends:"), p.ExcludeWeekends))
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ConfidenceStyle returns the style corresponding to the given confidence.
func ConfidenceStyle(c domain.Confidence) lipgloss.Style {
	switch c {
	case domain.ConfidenceHigh:
		return StyleGreen
	case domain.ConfidenceMedium:
		return StyleYellow
	case domain.ConfidenceLow:
		return StyleRed
	default:
		return StyleDim
	}
}

// PolicyStyle colors the schedule policy tag.
func PolicyStyle(p domain.SchedulePolicy) lipgloss.Style {
	switch p {
	case domain.PolicyStrict, domain.PolicyRecurringStrict:
		return StyleBlue
	case domain.PolicyDeadline:
		return StylePurple
	case domain.PolicyFlexible:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyIndicator returns a colored marker such as "! OVERDUE", or "" when
// the suggestion carries no urgency.
func UrgencyIndicator(u domain.Urgency) string {
	switch u {
	case domain.UrgencyOverdue:
		return StyleRed.Render("! OVERDUE")
	case domain.UrgencyUpcoming:
		return StyleYellow.Render("! due soon")
	default:
		return ""
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmForm creates a themed yes/no confirmation form.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)
}

func newCommitCmd(app *App) *cobra.Command {
	var (
		from, to string
		days     int
		dryRun   bool
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Create the proposed suggestions on the remote calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, end, err := resolveRange(from, to, days)
			if err != nil {
				return err
			}
			req := contract.CommitRequest{From: start, To: end, DryRun: dryRun}

			// Preview first so the confirmation shows what would be created.
			if !dryRun && !yes && app.interactive() {
				preview, err := app.Commits.Commit(ctx, contract.CommitRequest{From: start, To: end, DryRun: true})
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatCommitResult(preview.Result))
				if preview.Result.Planned == 0 {
					return nil
				}

				confirmed := false
				prompt := fmt.Sprintf("Create %d event(s) on the remote calendar?", preview.Result.Planned)
				if err := confirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			resp, err := app.Commits.Commit(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCommitResult(resp.Result))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&days, "days", 7, "Range length in days when --to is not given")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without touching the remote calendar")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Profiles   service.ProfileService
	Agendas    service.AgendaService
	Commits    service.CommitService
	Import     service.ImportService

	// IsInteractive reports whether stdin/stdout are attached to a terminal;
	// non-interactive runs skip the TUI and confirmation forms.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Personal agenda planner with calendar-aware conflict resolution",
	}

	root.AddCommand(
		newActivityCmd(app),
		newAgendaCmd(app),
		newCommitCmd(app),
		newProfileCmd(app),
		newExportCmd(app),
	)

	return root
}

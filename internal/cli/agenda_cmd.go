package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
)

func newAgendaCmd(app *App) *cobra.Command {
	var (
		from, to string
		days     int
		plain    bool
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Propose a reconciled agenda for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := agendaRequestFromFlags(from, to, days)
			if err != nil {
				return err
			}
			req.IncludeArchived = archived

			resp, err := app.Agendas.Propose(context.Background(), req)
			if err != nil {
				return err
			}

			if !plain && app.interactive() {
				return runAgendaBrowser(resp)
			}

			fmt.Print(formatter.FormatAgenda(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&days, "days", 7, "Range length in days when --to is not given")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the agenda without the interactive browser")
	cmd.Flags().BoolVar(&archived, "include-archived", false, "Also schedule archived activities")

	return cmd
}

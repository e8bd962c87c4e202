package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		from, to        string
		days            int
		out             string
		includeExisting bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the proposed agenda as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := agendaRequestFromFlags(from, to, days)
			if err != nil {
				return err
			}

			resp, err := app.Agendas.Propose(context.Background(), req)
			if err != nil {
				return err
			}

			ics := export.ICS(resp.Proposal, time.Now(), export.Options{
				IncludeExisting: includeExisting,
				Name:            "Cadence agenda",
			})

			if out == "" || out == "-" {
				fmt.Print(ics)
				return nil
			}
			if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&days, "days", 7, "Range length in days when --to is not given")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&includeExisting, "include-existing", false, "Also export events already on the calendar")

	return cmd
}

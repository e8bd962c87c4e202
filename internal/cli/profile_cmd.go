package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the scheduling profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		timezone         string
		workStart        int
		workEnd          int
		duration, buffer int
		excludeWeekends  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile options",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("timezone") {
				p.Timezone = timezone
			}
			if cmd.Flags().Changed("work-start") {
				p.WorkdayStartHour = workStart
			}
			if cmd.Flags().Changed("work-end") {
				p.WorkdayEndHour = workEnd
			}
			if cmd.Flags().Changed("duration") {
				p.PreferredDurationMin = duration
			}
			if cmd.Flags().Changed("buffer") {
				p.BufferMin = buffer
			}
			if cmd.Flags().Changed("exclude-weekends") {
				p.ExcludeWeekends = excludeWeekends
			}

			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}

			fmt.Print(formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, e.g. Europe/Berlin")
	cmd.Flags().IntVar(&workStart, "work-start", 9, "Workday start hour (0-23)")
	cmd.Flags().IntVar(&workEnd, "work-end", 17, "Workday end hour (1-24)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Preferred suggestion duration in minutes")
	cmd.Flags().IntVar(&buffer, "buffer", 15, "Minimum lead time before a same-day suggestion")
	cmd.Flags().BoolVar(&excludeWeekends, "exclude-weekends", false, "Keep flexible suggestions off weekends")

	return cmd
}

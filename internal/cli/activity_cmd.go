package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/importer"
)

const dateTimeLayout = "2006-01-02 15:04"

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage schedulable activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityImportCmd(app),
		newActivityListCmd(app),
		newActivityInspectCmd(app),
		newActivityArchiveCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var (
		name, desc, policy     string
		start, end, due        string
		every                  int
		freq, weekdays         string
		monthDays, setPos      []int
		ruleStart, ruleEnd     string
		windowStart, windowEnd string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Activity{
				Name:        name,
				Description: desc,
				Policy:      domain.SchedulePolicy(policy),
			}

			switch a.Policy {
			case domain.PolicyStrict:
				s, err := time.Parse(dateTimeLayout, start)
				if err != nil {
					return fmt.Errorf("invalid --start %q: %w", start, err)
				}
				e, err := time.Parse(dateTimeLayout, end)
				if err != nil {
					return fmt.Errorf("invalid --end %q: %w", end, err)
				}
				a.StartTime = &s
				a.EndTime = &e

			case domain.PolicyFlexible:
				if every > 0 {
					a.MaxFrequencyDays = &every
				}

			case domain.PolicyDeadline:
				d, err := time.Parse(dateTimeLayout, due)
				if err != nil {
					return fmt.Errorf("invalid --due %q: %w", due, err)
				}
				a.Deadline = &d

			case domain.PolicyRecurringStrict:
				rule, err := buildRecurrenceRule(freq, weekdays, monthDays, setPos, ruleStart, ruleEnd)
				if err != nil {
					return err
				}
				a.Recurrence = rule
				ws, err := importer.ParseMinOfDay(windowStart)
				if err != nil {
					return fmt.Errorf("invalid --window-start %q: %w", windowStart, err)
				}
				we, err := importer.ParseMinOfDay(windowEnd)
				if err != nil {
					return fmt.Errorf("invalid --window-end %q: %w", windowEnd, err)
				}
				a.WindowStartMin = &ws
				a.WindowEndMin = &we
			}

			if err := app.Activities.Create(context.Background(), a); err != nil {
				return err
			}

			fmt.Printf("Created activity %s [%s]\n", a.Name, a.Policy)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&policy, "policy", "", "Schedule policy (strict|flexible|deadline|recurring_strict)")
	cmd.Flags().StringVar(&start, "start", "", "Fixed start (YYYY-MM-DD HH:MM, strict only)")
	cmd.Flags().StringVar(&end, "end", "", "Fixed end (YYYY-MM-DD HH:MM, strict only)")
	cmd.Flags().IntVar(&every, "every", 0, "Repeat cadence in days (flexible only)")
	cmd.Flags().StringVar(&due, "due", "", "Deadline (YYYY-MM-DD HH:MM, deadline only)")
	cmd.Flags().StringVar(&freq, "freq", "", "Recurrence frequency (DAILY|WEEKLY|MONTHLY|YEARLY)")
	cmd.Flags().StringVar(&weekdays, "weekdays", "", "Comma-separated weekdays, e.g. MO,WE,FR")
	cmd.Flags().IntSliceVar(&monthDays, "monthdays", nil, "Days of month, e.g. 1,15")
	cmd.Flags().IntSliceVar(&setPos, "setpos", nil, "Nth weekday in month, negative counts from the end")
	cmd.Flags().StringVar(&ruleStart, "rule-start", "", "Recurrence anchor date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ruleEnd, "rule-end", "", "Last matching date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&windowStart, "window-start", "", "Daily window start (HH:MM, recurring only)")
	cmd.Flags().StringVar(&windowEnd, "window-end", "", "Daily window end (HH:MM, recurring only)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("policy")

	return cmd
}

// buildRecurrenceRule assembles a rule from the recurrence flags.
func buildRecurrenceRule(freq, weekdays string, monthDays, setPos []int, ruleStart, ruleEnd string) (*domain.RecurrenceRule, error) {
	anchor, err := time.Parse(dateLayout, ruleStart)
	if err != nil {
		return nil, fmt.Errorf("invalid --rule-start %q: %w", ruleStart, err)
	}

	rule := &domain.RecurrenceRule{
		Frequency:   domain.Frequency(strings.ToUpper(freq)),
		ByMonthDays: monthDays,
		BySetPos:    setPos,
		StartDate:   domain.DateOf(anchor),
	}

	if weekdays != "" {
		wd, err := importer.ParseWeekdays(weekdays)
		if err != nil {
			return nil, err
		}
		rule.ByWeekdays = wd
	}
	if ruleEnd != "" {
		until, err := time.Parse(dateLayout, ruleEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid --rule-end %q: %w", ruleEnd, err)
		}
		u := domain.DateOf(until)
		rule.EndDate = &u
	}
	return rule, nil
}

func newActivityImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create activities from a YAML file, all-or-nothing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d activities:\n", result.Created)
			for _, name := range result.Names {
				fmt.Printf("  - %s\n", name)
			}
			return nil
		},
	}
}

func newActivityListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(activities) == 0 {
				fmt.Println("No activities found.")
				return nil
			}

			fmt.Print(formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived activities")
	return cmd
}

func newActivityInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show one activity in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatActivityList([]*domain.Activity{a}))
			if a.Description != "" {
				fmt.Printf("      %s\n", a.Description)
			}
			return nil
		},
	}
}

func newActivityArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive an activity so it stops generating suggestions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Archived.")
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an activity permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

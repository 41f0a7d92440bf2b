package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats [goal]",
		Short: "Show progress analytics for a goal, or recent activity across goals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				resp, err := app.Progress.Analytics(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatAnalytics(resp))
				return nil
			}

			resp, err := app.Progress.Activity(ctx, days)
			if err != nil {
				return err
			}
			summaries, err := app.Plans.List(ctx, false)
			if err != nil {
				return err
			}
			labels := make(map[string]string, len(summaries))
			for _, s := range summaries {
				labels[s.Goal.ID] = s.Goal.DisplayID()
			}
			fmt.Fprintln(out, formatter.FormatActivity(resp, labels))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Activity window in days when no goal is given")
	return cmd
}

func newCatchUpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catchup <goal>",
		Short: "List missed days and a plan to catch up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Progress.CatchUp(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatchUp(resp))
			return nil
		},
	}
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today <goal>",
		Short: "Show today's task for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Progress.Reminder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReminder(resp))
			return nil
		},
	}
}

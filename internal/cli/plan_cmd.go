package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and manage learning plans",
	}

	cmd.AddCommand(
		newPlanPreviewCmd(app),
		newPlanCreateCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanArchiveCmd(app),
		newPlanDeleteCmd(app),
		newPlanRegenerateCmd(app),
	)

	return cmd
}

func newPlanPreviewCmd(app *App) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a generated roadmap without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(app.now())
			if err != nil {
				return err
			}
			resp, err := app.Plans.Preview(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreview(resp))
			return nil
		},
	}

	flags.register(cmd.Flags(), app.defaultHours())
	return cmd
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a roadmap and save it as a new goal",
		Long: `Generate a roadmap and save it as a new goal.

Run without flags on a terminal to fill in the goal interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req contract.CreatePlanRequest
			if cmd.Flags().NFlag() == 0 && app.interactive() {
				var err error
				req, err = runPlanWizard(app)
				if err != nil {
					return err
				}
			} else {
				var err error
				req, err = flags.request(app.now())
				if err != nil {
					return err
				}
			}

			detail, err := app.Plans.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			g := detail.Goal
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created goal %s [%s] with %d day(s) through %s\n",
				formatter.Bold(g.Title), g.DisplayID(), len(detail.Tasks), g.Deadline.Format(domain.DateLayout))
			fmt.Fprintln(out, formatter.Dim("See today's task with: skillpilot today "+g.DisplayID()))
			return nil
		},
	}

	flags.register(cmd.Flags(), app.defaultHours())
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Plans.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(summaries, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived goals")
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "show <goal>",
		Short: "Show a goal's roadmap, or a single day with --day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if day == 0 {
				fmt.Fprint(out, formatter.FormatPlanDetail(detail, app.now()))
				return nil
			}
			for _, t := range detail.Tasks {
				if t.Day == day {
					fmt.Fprintln(out, formatter.FormatTaskCard(detail.Goal, t))
					return nil
				}
			}
			return fmt.Errorf("%s has no day %d (roadmap has %d days)", detail.Goal.DisplayID(), day, len(detail.Tasks))
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Show a single day of the roadmap")
	return cmd
}

func newPlanArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <goal>",
		Short: "Archive a goal, freezing its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Plans.Archive(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived goal %s [%s]\n", g.Title, g.DisplayID())
			return nil
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <goal>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal and its roadmap",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				prompt := fmt.Sprintf("Delete %s and all of its progress?", args[0])
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			g, err := app.Plans.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s [%s]\n", g.Title, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newPlanRegenerateCmd(app *App) *cobra.Command {
	var flags deadlineFlags

	cmd := &cobra.Command{
		Use:   "regenerate <goal>",
		Short: "Rebuild a goal's roadmap from today to a new deadline",
		Long: `Rebuild a goal's roadmap from today to a new deadline.

Days whose topic survives in the new roadmap keep their completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deadline, err := flags.resolve(app.now())
			if err != nil {
				return err
			}
			if deadline.IsZero() {
				return fmt.Errorf("--deadline or --days is required")
			}

			detail, err := app.Plans.Regenerate(cmd.Context(), args[0], deadline)
			if err != nil {
				return err
			}

			completed := 0
			for _, t := range detail.Tasks {
				if t.IsCompleted() {
					completed++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Regenerated %s: %d day(s) through %s, %d already completed\n",
				detail.Goal.DisplayID(), len(detail.Tasks), deadline.Format(domain.DateLayout), completed)
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// parseDay parses a 1-based roadmap day argument.
func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day <= 0 {
		return 0, fmt.Errorf("day must be a positive number, got %q", s)
	}
	return day, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Mark roadmap days as done or pending",
	}

	cmd.AddCommand(
		newTaskTransitionCmd("done", "Mark a day as completed",
			func(ctx context.Context, ref string, day int) (*domain.Task, error) {
				return app.Tasks.Complete(ctx, ref, day)
			}),
		newTaskTransitionCmd("undo", "Mark a completed day as pending again",
			func(ctx context.Context, ref string, day int) (*domain.Task, error) {
				return app.Tasks.Reopen(ctx, ref, day)
			}),
	)

	return cmd
}

type taskTransition func(ctx context.Context, ref string, day int) (*domain.Task, error)

func newTaskTransitionCmd(use, short string, apply taskTransition) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <goal> <day>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			t, err := apply(cmd.Context(), args[0], day)
			if err != nil {
				return err
			}

			state := "pending"
			if t.IsCompleted() {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Day %d of %s %s: %s\n",
				formatter.TaskCheck(t.Status), t.Day, args[0], state, t.Topic)
			return nil
		},
	}
}

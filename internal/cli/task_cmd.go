package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emmavds/softseason/internal/cli/formatter"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Mark daily tasks done or not done",
	}

	cmd.AddCommand(
		newTaskToggleCmd(app, "done", "Mark a daily task completed", true),
		newTaskToggleCmd(app, "undo", "Mark a daily task not completed", false),
	)

	return cmd
}

func newTaskToggleCmd(app *App, use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			state, err := app.Plans.ToggleTask(ctx, args[0], completed)
			if err != nil {
				return err
			}
			if state {
				fmt.Println(formatter.StyleGreen.Render("✓ completed"))
			} else {
				fmt.Println(formatter.Dim("○ not completed"))
			}
			return nil
		},
	}
}

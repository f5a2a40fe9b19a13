package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emmavds/softseason/internal/cli/formatter"
	"github.com/emmavds/softseason/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "plan <session-id>",
		Short: "Show a session's plan, generating it first if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := formatter.StartSpinner("fetching your plan...")
			plan, err := app.Plans.GetOrCreate(ctx, args[0])
			stop()
			if err != nil {
				return err
			}

			if day > 0 {
				return printDay(plan.Tasks, day)
			}
			fmt.Println(formatter.FormatPlan(plan.SummarySentence, plan.Tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "Show a single day in full (1-25)")
	return cmd
}

func printDay(tasks []*domain.DailyTask, day int) error {
	for _, task := range tasks {
		if task.DayIndex == day {
			fmt.Println(formatter.FormatTaskDetail(task))
			return nil
		}
	}
	return fmt.Errorf("no day %d in this plan", day)
}

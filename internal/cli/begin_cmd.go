package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/emmavds/softseason/internal/cli/formatter"
	"github.com/emmavds/softseason/internal/domain"
)

func newBeginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "begin [wish...]",
		Short: "Start a new journey: one wish, five questions, a 25-day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("begin needs an interactive terminal; use the plan command to view an existing plan")
			}
			ctx := context.Background()

			wish := strings.TrimSpace(strings.Join(args, " "))
			if wish == "" {
				if err := wishForm(&wish).Run(); err != nil {
					return err
				}
			}

			session, err := app.Sessions.Create(ctx, wish)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Dim("session " + session.ID))
			fmt.Println()

			if err := runQuestionLoop(ctx, app, session.ID); err != nil {
				return err
			}

			stop := formatter.StartSpinner("weaving your plan...")
			plan, err := app.Plans.GetOrCreate(ctx, session.ID)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatPlan(plan.SummarySentence, plan.Tasks, time.Now()))

			var email string
			if err := emailForm(&email).Run(); err != nil {
				return err
			}
			if email = strings.TrimSpace(email); email != "" {
				if err := app.Sessions.SaveEmail(ctx, session.ID, email); err != nil {
					return err
				}
				fmt.Println(formatter.Dim("saved " + email))
			}
			return nil
		},
	}
	return cmd
}

// runQuestionLoop asks questions until the service reports the phase done.
func runQuestionLoop(ctx context.Context, app *App, sessionID string) error {
	for {
		stop := formatter.StartSpinner("thinking of a good question...")
		next, err := app.Questions.Next(ctx, sessionID)
		stop()
		if err != nil {
			return err
		}
		if next.Done {
			return nil
		}

		q := next.Question
		fmt.Println(formatter.Dim(fmt.Sprintf("Question %d of %d", q.Index, domain.MaxQuestions)))

		var value domain.AnswerValue
		if err := answerForm(q, &value).Run(); err != nil {
			return err
		}
		if _, err := app.Questions.SubmitAnswer(ctx, sessionID, q.ID, value); err != nil {
			return err
		}
		fmt.Println()
	}
}

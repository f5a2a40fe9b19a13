package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emmavds/softseason/internal/cli/formatter"
)

func newEmailCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "email <session-id> <address>",
		Short: "Attach an email address to a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Sessions.SaveEmail(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("saved " + args[1]))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <session-id>",
		Short: "Browse a plan interactively and toggle days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			return runBrowse(app, args[0])
		},
	}
}

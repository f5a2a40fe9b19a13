package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/emmavds/softseason/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionService
	Questions service.QuestionService
	Plans     service.PlanService

	// IsInteractive reports whether stdin is a terminal; the begin
	// wizard refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "softseason" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "softseason",
		Short: "A gentle 25-day December plan, shaped around one wish",
	}

	// Accept underscored flag spellings (--session_id) as dashed ones.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newBeginCmd(app),
		newPlanCmd(app),
		newBrowseCmd(app),
		newTaskCmd(app),
		newEmailCmd(app),
	)

	return root
}

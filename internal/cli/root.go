package cli

import (
	"time"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/alexanderramin/skillpilot/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Plans    service.PlanService
	Tasks    service.TaskService
	Progress service.ProgressService
	Catalog  *roadmap.Catalog
	Clock    roadmap.Clock

	// DefaultHours seeds --hours and the wizard's daily budget.
	DefaultHours float64

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultHours() float64 {
	if a.DefaultHours <= 0 {
		return roadmap.DefaultHoursPerDay
	}
	return a.DefaultHours
}

// NewRootCmd creates the top-level "skillpilot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillpilot",
		Short:         "Deadline-driven learning roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newCatchUpCmd(app),
		newTodayCmd(app),
		newCatalogCmd(app),
		newBrowseCmd(app),
	)

	return root
}

package cli

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/service"
	"github.com/alexanderramin/timetrack/internal/stats"
	"github.com/spf13/cobra"
)

// App holds the services and terminal settings used by CLI commands.
type App struct {
	Tracking service.TrackingService
	Reports  service.ReportService

	// Messages enables the encouragement line after recording.
	Messages bool
	// Rand draws encouragement messages. Nil seeds one from the clock.
	Rand *rand.Rand
	// IsInteractive reports whether prompts can be shown. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return huhConfirm(title)
}

func (a *App) rng() *rand.Rand {
	if a.Rand == nil {
		a.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a.Rand
}

// NewRootCmd creates the top-level "timetrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetrack",
		Short: "Log arrivals, breaks and departures and report worked time",
		Long: `timetrack keeps a log of when you arrive, take a break, resume and leave,
and reports the time worked per day, week and month against a daily target.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newTrackCmd(app, trackCommand{
			use:      "morning",
			short:    "Record your arrival",
			activity: domain.ActivityArrive,
		}),
		newTrackCmd(app, trackCommand{
			use:      "break",
			short:    "Record the start of a break",
			activity: domain.ActivityBreak,
		}),
		newTrackCmd(app, trackCommand{
			use:      "resume",
			aliases:  []string{"continue"},
			short:    "Record the end of a break",
			activity: domain.ActivityResume,
		}),
		newTrackCmd(app, trackCommand{
			use:      "closing",
			short:    "Record your departure",
			activity: domain.ActivityLeave,
		}),
		newDayCmd(app),
		newPeriodCmd(app, stats.PeriodWeek),
		newPeriodCmd(app, stats.PeriodMonth),
		newSummaryCmd(app),
		newStatusCmd(app),
	)

	return root
}

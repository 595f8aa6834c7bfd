package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/timetrack/internal/cli/formatter"
	"github.com/alexanderramin/timetrack/internal/stats"
	"github.com/spf13/cobra"
)

// offsetArg parses the optional signed offset argument of the report
// commands.
func offsetArg(args []string, unit string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: expected whole %s", args[0], unit)
	}
	return n, nil
}

func newDayCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "day [offset]",
		Short: "List the entries of a day with worked time",
		Long: `List the entries of today, or of the day offset days away ("-1" is
yesterday), with break lengths and the worked time. For today the
suggested time to leave is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			offset, err := offsetArg(args, "days")
			if err != nil {
				return err
			}
			report, err := app.Reports.Day(cmd.Context(), offset)
			if err != nil {
				return describe(err)
			}
			return out.write(cmd,
				func() string { return formatter.FormatDayReport(report) },
				func() formatter.Sheet { return formatter.DaySheet(report) })
		},
	}
	out.register(cmd)

	return cmd
}

func newPeriodCmd(app *App, kind stats.PeriodKind) *cobra.Command {
	var out outputFlags

	noun := "week"
	fetch := app.weekReport
	if kind == stats.PeriodMonth {
		noun = "month"
		fetch = app.monthReport
	}

	cmd := &cobra.Command{
		Use:   noun + " [offset]",
		Short: fmt.Sprintf("Show worked time per day of the current or an offset %s", noun),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			offset, err := offsetArg(args, noun+"s")
			if err != nil {
				return err
			}
			report, err := fetch(cmd, offset)
			if err != nil {
				return describe(err)
			}
			return out.write(cmd,
				func() string { return formatter.FormatPeriodReport(report) },
				func() formatter.Sheet { return formatter.PeriodSheet(report) })
		},
	}
	out.register(cmd)

	return cmd
}

func (a *App) weekReport(cmd *cobra.Command, offset int) (*stats.PeriodReport, error) {
	return a.Reports.Week(cmd.Context(), offset)
}

func (a *App) monthReport(cmd *cobra.Command, offset int) (*stats.PeriodReport, error) {
	return a.Reports.Month(cmd.Context(), offset)
}

func newSummaryCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "summary [weeks]",
		Short: "Show expected and worked time over many weeks",
		Long: `Show expected time, total worked time and the difference from the
Monday weeks weeks before the current one until today. Without weeks the
window reaches back to the first entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			var weeks *int
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid number of weeks %q", args[0])
				}
				weeks = &n
			}
			report, err := app.Reports.Summary(cmd.Context(), weeks)
			if err != nil {
				return describe(err)
			}
			return out.write(cmd,
				func() string { return formatter.FormatSummaryReport(report) },
				func() formatter.Sheet { return formatter.SummarySheet(report) })
		},
	}
	out.register(cmd)

	return cmd
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/timetrack/internal/cli/formatter"
	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/message"
	"github.com/spf13/cobra"
)

type trackCommand struct {
	use      string
	aliases  []string
	short    string
	activity domain.ActivityType
}

func newTrackCmd(app *App, def trackCommand) *cobra.Command {
	var offsetMin int
	var yes bool

	cmd := &cobra.Command{
		Use:     def.use + " [offset]",
		Aliases: def.aliases,
		Short:   def.short,
		Long: def.short + `.

The optional offset moves the entry by whole minutes from now. A negative
offset such as "-10" records an entry in the past.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset := offsetMin
			if len(args) == 1 {
				if cmd.Flags().Changed("offset") {
					return fmt.Errorf("offset given both as argument and flag")
				}
				n, err := parseOffset(args[0])
				if err != nil {
					return err
				}
				offset = n
			}

			if offset != 0 && !yes && app.interactive() {
				ok, err := app.confirm(fmt.Sprintf("Record %s %s?", def.activity, describeOffset(offset)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing recorded.")
					return nil
				}
			}

			res, err := app.Tracking.Record(cmd.Context(), def.activity, time.Duration(offset)*time.Minute)
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRecorded(res.Event))
			if app.Messages {
				if msg := message.ForEvent(app.rng(), res.Event, res.Previous); msg != "" {
					fmt.Fprintln(out, msg)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&offsetMin, "offset", "o", 0, "Minutes to add to the current time (negative for the past)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Record an offset entry without asking")

	return cmd
}

func parseOffset(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: expected whole minutes", arg)
	}
	return n, nil
}

func describeOffset(minutes int) string {
	unit := "minutes"
	if minutes == 1 || minutes == -1 {
		unit = "minute"
	}
	if minutes < 0 {
		return fmt.Sprintf("%d %s ago", -minutes, unit)
	}
	return fmt.Sprintf("%d %s from now", minutes, unit)
}

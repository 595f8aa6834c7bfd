package cli

import (
	"fmt"

	"github.com/alexanderramin/timetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last entry and whether you are working, on a break or away",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Tracking.Status(cmd.Context())
			if err != nil {
				return describe(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(st))
			return nil
		},
	}
}

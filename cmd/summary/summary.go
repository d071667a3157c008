// Package summary implements the dashboard command.
package summary

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/aggregate"
	"fjacquet/finance-tracker/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = NewCmd()

// NewCmd builds the summary command.
func NewCmd() *cobra.Command {
	var days int
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, top category, cap remaining and the recent trend",
		Long: `Show the number of transactions, their total, the most frequent category,
what is left of the spending cap and the per-day totals for the last N days
ending today.`,
		Example: `  sft summary
  sft summary --days 30 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			if days == 0 {
				days = app.GetConfig().Trend.Days
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}

			l := app.GetLedger()
			s := aggregate.Summarize(l.ExportAll(), l.Settings(), days, app.Now())
			out, err := app.GetReporter().Generate(s, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 0, "Trend window in days (default: trend.days from config)")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format (text, json or yaml)")
	return cmd
}

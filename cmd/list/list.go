// Package list implements the command that lists and searches transactions.
package list

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/search"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = NewCmd()

// NewCmd builds the list command.
func NewCmd() *cobra.Command {
	var pattern string
	var noHighlight bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, optionally filtered by a search pattern",
		Long: `List transactions in insertion order. --search takes a case-insensitive
regular expression matched against description, category, date and amount;
when it is not a valid expression it is matched as plain text instead.`,
		Example: `  sft list
  sft list --search "^rent"
  sft list -s "["`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			l := app.GetLedger()
			all := l.ExportAll()
			matcher := search.Compile(pattern)
			shown := search.Filter(all, matcher)
			if matcher != nil {
				app.GetLogger().Debug("Search compiled",
					logging.F(logging.FieldPattern, pattern),
					logging.F(logging.FieldMatcher, string(matcher.Kind())))
			}

			opts := common.TableOptions{Settings: l.Settings(), Marker: app.GetMarker()}
			if !noHighlight {
				opts.Matcher = matcher
			}
			if err := common.PrintTransactions(cmd.OutOrStdout(), shown, opts); err != nil {
				return err
			}
			if matcher != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d transactions match\n", len(shown), len(all))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "search", "s", "", "Search pattern (regular expression, case-insensitive)")
	cmd.Flags().BoolVar(&noHighlight, "no-highlight", false, "Do not mark matches in the output")
	return cmd
}

// Package add implements the command that records a new transaction.
package add

import (
	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = NewCmd()

// NewCmd builds the add command.
func NewCmd() *cobra.Command {
	var c models.Candidate

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new transaction. Every field is validated before anything is stored:
the description must not be padded or repeat a word, the amount is a
non-negative number with at most two decimals, the category is letters
separated by single spaces or hyphens and the date is YYYY-MM-DD.`,
		Example: `  sft add -d "Weekly groceries" -a 42.50 -c Food
  sft add --description "Bus pass" --amount 30 --category Transport --date 2024-06-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("date") {
				c.Date = dateutils.ToISODate(app.Now())
			}

			l := app.GetLedger()
			txn, err := l.Add(c)
			if err != nil {
				return err
			}
			return common.PrintTransaction(cmd.OutOrStdout(), txn, l.Settings())
		},
	}

	cmd.Flags().StringVarP(&c.Description, "description", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&c.Amount, "amount", "a", "", "Amount, e.g. 12.50")
	cmd.Flags().StringVarP(&c.Category, "category", "c", "", "Category, e.g. Food")
	cmd.Flags().StringVarP(&c.Date, "date", "t", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

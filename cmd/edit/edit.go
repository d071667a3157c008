// Package edit implements the command that changes an existing transaction.
package edit

import (
	"errors"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

// ErrNothingToChange is returned when no field flag was given.
var ErrNothingToChange = errors.New("nothing to change: pass at least one of --description, --amount, --category, --date")

// Cmd represents the edit command
var Cmd = NewCmd()

// NewCmd builds the edit command.
func NewCmd() *cobra.Command {
	var description, amount, category, date string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing transaction",
		Long: `Change fields of an existing transaction. Only the flags that are given are
changed; the merged record is validated again before it is stored.`,
		Example: `  sft edit txn_5f1c... --amount 45.00
  sft edit txn_5f1c... -c Groceries -d "Weekly groceries"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			var patch models.Patch
			flags := cmd.Flags()
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("amount") {
				patch.Amount = &amount
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("date") {
				patch.Date = &date
			}
			if patch.IsEmpty() {
				return ErrNothingToChange
			}

			l := app.GetLedger()
			txn, err := l.Edit(args[0], patch)
			if err != nil {
				return err
			}
			return common.PrintTransaction(cmd.OutOrStdout(), txn, l.Settings())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&date, "date", "t", "", "New date as YYYY-MM-DD")
	return cmd
}

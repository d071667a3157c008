// Package remove implements the delete command.
package remove

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the delete command
var Cmd = NewCmd()

// NewCmd builds the delete command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction by id. Deleting an id that does not exist is not an error.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			removed, err := app.GetLedger().Delete(args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No transaction %s, nothing deleted\n", args[0])
			}
			return nil
		},
	}
}

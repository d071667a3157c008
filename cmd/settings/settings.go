// Package settings implements the command that shows or replaces the settings.
package settings

import (
	"fmt"
	"io"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the settings command
var Cmd = NewCmd()

// NewCmd builds the settings command.
func NewCmd() *cobra.Command {
	var capText, currency string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the spending cap and currency",
		Long: `Without flags, print the current spending cap and currency. With --cap or
--currency, store a new settings record; a flag that is not given keeps its
current value.`,
		Example: `  sft settings
  sft settings --cap 2500 --currency USD`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			l := app.GetLedger()
			next := l.Settings()
			changed := false
			if cmd.Flags().Changed("cap") {
				c, err := decimal.NewFromString(capText)
				if err != nil {
					return &apperror.ValidationError{Fields: map[string]string{validation.FieldCap: validation.MsgNegativeCap}}
				}
				next.Cap = c
				changed = true
			}
			if cmd.Flags().Changed("currency") {
				next.Currency = currency
				changed = true
			}

			if changed {
				if next, err = l.UpdateSettings(next); err != nil {
					return err
				}
			}
			return printSettings(cmd.OutOrStdout(), next)
		},
	}

	cmd.Flags().StringVar(&capText, "cap", "", "Spending cap, e.g. 2500")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code shown before amounts, e.g. ZMW")
	return cmd
}

func printSettings(w io.Writer, s models.Settings) error {
	_, err := fmt.Fprintf(w, "Cap:       %s\nCurrency:  %s\n", s.FormatAmount(s.Cap), s.Currency)
	return err
}

// Package importer implements the bulk import command.
package importer

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/exchange"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = NewCmd()

// NewCmd builds the import command.
func NewCmd() *cobra.Command {
	var formatName string
	var skipSettings bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append transactions from a JSON, YAML or CSV document",
		Long: `Append every transaction in a document to the ledger. JSON and YAML accept a
bare list or an object with "transactions" (or the older "tx") and an
optional "settings" record, which replaces the current settings. Use "-" to
read from standard input. Records are only validated when import.strict is
enabled in the configuration.`,
		Example: `  sft import backup.json
  sft import expenses.csv
  cat backup.yaml | sft import - --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			format := exchange.FormatFromPath(path, exchange.FormatJSON)
			if formatName != "" {
				if format, err = exchange.ParseFormat(formatName); err != nil {
					return err
				}
			}

			in, err := common.OpenInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			doc, err := app.GetCodec().Decode(in, format)
			if err != nil {
				return err
			}

			settings := doc.Settings
			if skipSettings {
				settings = nil
			}

			l := app.GetLedger()
			imported, err := l.ImportDocument(doc.Transactions, settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions\n", len(imported))
			if settings != nil {
				s := l.Settings()
				fmt.Fprintf(cmd.OutOrStdout(), "Settings replaced: cap %s\n", s.FormatAmount(s.Cap))
			}

			app.GetLogger().Info("Import finished",
				logging.F(logging.FieldFile, path),
				logging.F(logging.FieldFormat, string(format)),
				logging.F(logging.FieldCount, len(imported)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Document format (json, yaml or csv; default: from file extension)")
	cmd.Flags().BoolVar(&skipSettings, "skip-settings", false, "Ignore a settings record in the document")
	return cmd
}

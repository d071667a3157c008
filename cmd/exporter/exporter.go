// Package exporter implements the bulk export command.
package exporter

import (
	"bytes"
	"fmt"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/exchange"
	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = NewCmd()

// NewCmd builds the export command.
func NewCmd() *cobra.Command {
	var formatName string
	var withSettings bool

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write every transaction to a JSON, YAML or CSV document",
		Long: `Write the whole ledger, in insertion order, to a file or to standard output.
JSON and YAML are pretty-printed; --with-settings wraps the transactions in an
object that also carries the settings record, which CSV cannot hold.`,
		Example: `  sft export > backup.json
  sft export backup.yaml --with-settings
  sft export expenses.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			path := common.Stdio
			if len(args) == 1 {
				path = args[0]
			}

			fallback, err := exchange.ParseFormat(app.GetConfig().Export.Format)
			if err != nil {
				return err
			}
			format := fallback
			if path != common.Stdio {
				format = exchange.FormatFromPath(path, fallback)
			}
			if formatName != "" {
				if format, err = exchange.ParseFormat(formatName); err != nil {
					return err
				}
			}

			l := app.GetLedger()
			doc := exchange.Document{Transactions: l.ExportAll()}
			if withSettings {
				s := l.Settings()
				doc.Settings = &s
			}

			var buf bytes.Buffer
			if err := app.GetCodec().Encode(&buf, format, doc); err != nil {
				return err
			}

			if path == common.Stdio {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := fileutils.WriteFileAtomic(path, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("error writing export file: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d transactions to %s\n", len(doc.Transactions), path)
			app.GetLogger().Info("Export finished",
				logging.F(logging.FieldFile, path),
				logging.F(logging.FieldFormat, string(format)),
				logging.F(logging.FieldCount, len(doc.Transactions)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Document format (json, yaml or csv; default: file extension, then export.format)")
	cmd.Flags().BoolVar(&withSettings, "with-settings", false, "Include the settings record (json and yaml only)")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"

	"fjacquet/finance-tracker/cmd/add"
	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/edit"
	"fjacquet/finance-tracker/cmd/exporter"
	"fjacquet/finance-tracker/cmd/importer"
	"fjacquet/finance-tracker/cmd/list"
	"fjacquet/finance-tracker/cmd/remove"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/settings"
	"fjacquet/finance-tracker/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(exporter.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
}

func main() {
	if err := root.ExecuteContext(context.Background(), root.Cmd); err != nil {
		fmt.Fprintln(os.Stderr, common.FormatError(err))
		os.Exit(1)
	}
}

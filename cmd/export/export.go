// Package export implements the command that writes the localized CSV for
// a filtered analysis result.
package export

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foliolens/cmd/common"
	"foliolens/cmd/root"
	"foliolens/internal/analytics"
	"foliolens/internal/export"
)

var flags common.FilterFlags

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered transactions as a localized CSV",
	Long: `Apply the table filters (search, category, date range) to an analysis
result produced by 'analyze' and write the rows as the spreadsheet-ready
localized CSV (UTF-8 BOM, es/en headers, converted amounts).`,
	Run: exportFunc,
}

func init() {
	flags.Register(Cmd)
}

func exportFunc(cmd *cobra.Command, args []string) {
	result, err := common.LoadResult(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	cfg := root.LoadConfig()
	display, err := flags.Display(cfg.Defaults.Currency)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	labels := flags.Labels(cfg.Defaults.Language)

	rows := analytics.ConvertAll(result, display, root.Rates(cfg))
	filtered := analytics.FilterForTable(rows, flags.FilterState())

	data := export.Localized(filtered, string(display), labels)

	outFile := root.SharedFlags.Output
	if outFile == "" {
		outFile = export.ExportFileName(result.HotelName)
	}
	if err := os.WriteFile(outFile, data, 0600); err != nil {
		root.Log.Fatalf("Error writing CSV file: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"output_file": outFile,
		"count":       len(filtered),
		"currency":    display,
	}).Info("Export completed successfully!")
}

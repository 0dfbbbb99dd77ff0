package cmd

import (
	"inventory-manager/core/reconcile"

	"github.com/spf13/cobra"
)

var dryRunImport bool

// importCmd imports a CSV or XLSX file into the database.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import products from a CSV or XLSX file",
	Long: `Imports every row of the file. A product is added when its name is new and
updated when the row's date is later than the stored one; older or same-day rows
are skipped. Rows that cannot be parsed are reported and do not stop the import.

Without a file argument the configured inventory file is used.

Examples:
  # Import the configured file
  inventory import

  # Preview an import without saving anything
  inventory import stock.xlsx --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Report what would change without saving")
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	summary, err := a.service.Import(cmd.Context(), path, reconcile.Options{DryRun: dryRunImport})
	if summary != nil {
		printSummary(cmd, summary)
	}
	return err
}

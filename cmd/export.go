package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadExport bool

// exportCmd writes the whole database to a file.
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all products to a CSV or XLSX file",
	Long: `Overwrites the file with every product in the database, in the same column
layout the import reads. Without a file argument the configured backup file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&uploadExport, "upload", false, "Also upload the file to the backup bucket")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	ctx := cmd.Context()
	path, count, err := a.service.Export(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d products written to %s.\n", count, path)

	if !uploadExport {
		return nil
	}
	if !a.cfg.Inventory.UploadBackups {
		if err := a.enableUpload(); err != nil {
			return err
		}
	}
	object, err := a.service.Upload(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded to %s/%s.\n", a.cfg.Storage.Bucket, object)
	return nil
}

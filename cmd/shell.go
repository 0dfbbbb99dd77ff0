package cmd

import (
	"os"

	"inventory-manager/feature/shell"

	"github.com/spf13/cobra"
)

// shellCmd opens the interactive menu without importing first.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive inventory menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return shell.New(a.service, os.Stdin, os.Stdout, a.logger).Run(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(shellCmd)
}

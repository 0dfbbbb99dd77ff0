package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/shell"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipImport bool

// RootCmd represents the base command when called without any subcommands.
// On its own it runs a full session: import the configured file, then open the menu.
var RootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Store inventory manager",
	Long: `Inventory keeps a local product database in sync with CSV or XLSX files.

Without a subcommand it imports the configured inventory file, reporting how many
products were inserted, updated, skipped or rejected, and then opens the interactive
menu to view, add and back up products.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

func Execute() {
	// Prompts block on stdin, so an interrupt ends the process directly.
	// Every write is already committed when it returns.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nHalted by user.")
		os.Exit(130)
	}()

	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		// Console format with debug level gives ISO8601 timestamps, which reads better in a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVar(&skipImport, "skip-import", false, "Open the menu without importing the inventory file first")
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !skipImport {
		fmt.Println("Working...")
		summary, err := a.service.Import(ctx, "", reconcile.Options{})
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", a.cfg.Inventory.ImportFile, err)
		}
		printSummary(cmd, summary)
	}

	return shell.New(a.service, os.Stdin, os.Stdout, a.logger).Run(ctx)
}

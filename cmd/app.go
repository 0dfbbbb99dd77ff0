package cmd

import (
	"context"
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds everything a command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	service *inventory.Service
}

// newApp loads configuration, connects to the database and prepares the schema.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Debug("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))

	svc := inventory.NewService(db, cfg.Inventory, l)
	if err := svc.Migrate(context.Background()); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	a := &app{cfg: cfg, logger: l, db: db, service: svc}
	if cfg.Inventory.UploadBackups {
		if err := a.enableUpload(); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

// enableUpload points the service at the configured backup bucket.
func (a *app) enableUpload() error {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	a.service.SetUploadTarget(client, a.cfg.Storage.Bucket, a.cfg.Storage.Region)
	return nil
}

func (a *app) Close() {
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// printSummary reports the outcome counts of an import and every rejected row.
func printSummary(cmd *cobra.Command, s *reconcile.Summary) {
	out := cmd.OutOrStdout()
	if s.DryRun {
		fmt.Fprintln(out, "Dry run: no changes were saved.")
	}
	fmt.Fprintf(out, "%d rows processed.  %d added, %d updated, %d skipped, %d rejected.\n",
		s.Total(), s.Inserted, s.Updated, s.Skipped, s.Failed)
	for _, rowErr := range s.Errors {
		fmt.Fprintf(out, "  %v\n", rowErr)
	}
}

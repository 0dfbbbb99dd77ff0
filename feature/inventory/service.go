package inventory

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service bundles the store, the reconcile engine, the importer and the exporter
// behind the operations offered by the CLI and the interactive shell.
type Service struct {
	cfg      Config
	store    *Store
	engine   *reconcile.Engine[models.Product]
	importer *Importer
	exporter *Exporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new inventory service on db.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger) *Service {
	store := NewStore(db)
	engine := reconcile.NewEngine[models.Product](Adapter{}, store, logger)
	return &Service{
		cfg:      cfg,
		store:    store,
		engine:   engine,
		importer: NewImporter(engine, logger),
		exporter: NewExporter(store, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// SetUploadTarget enables backup uploads to bucket.
func (s *Service) SetUploadTarget(client storage.Client, bucket, region string) {
	s.exporter.SetUploadTarget(client, bucket, region, s.cfg.BackupPrefix)
}

// Migrate prepares the schema.
func (s *Service) Migrate(ctx context.Context) error {
	return s.store.Migrate(ctx)
}

// View returns the product with the given id, or an error wrapping ErrNotFound.
func (s *Service) View(ctx context.Context, id uint) (models.Product, error) {
	return s.store.GetByID(ctx, id)
}

// Add reconciles a single product entered by hand. A zero date is stamped with today.
// The returned product is the stored one: the new row, the updated row, or the
// untouched existing row when the outcome is Skipped.
func (s *Service) Add(ctx context.Context, p models.Product) (models.Product, reconcile.Outcome, error) {
	if p.UpdatedOn.IsZero() {
		p.UpdatedOn = s.Today()
	}
	return s.engine.Reconcile(ctx, p)
}

// Today returns the current local date.
func (s *Service) Today() time.Time {
	return models.DateOf(s.now())
}

// Import imports path, or the configured import file when path is empty.
func (s *Service) Import(ctx context.Context, path string, opts reconcile.Options) (*reconcile.Summary, error) {
	if path == "" {
		path = s.cfg.ImportFile
	}
	return s.importer.ImportFile(ctx, path, opts)
}

// Export writes the store to path, or to the configured backup file when path is empty.
// It returns the path written and the number of products.
func (s *Service) Export(ctx context.Context, path string) (string, int, error) {
	if path == "" {
		path = s.cfg.BackupFile
	}
	count, err := s.exporter.Export(ctx, path)
	if err != nil {
		return "", 0, err
	}
	return path, count, nil
}

// Upload copies an exported file to the backup bucket.
func (s *Service) Upload(ctx context.Context, path string) (string, error) {
	return s.exporter.Upload(ctx, path)
}

// Backup exports to the configured backup file and uploads it when enabled.
func (s *Service) Backup(ctx context.Context) (string, error) {
	path, _, err := s.Export(ctx, "")
	if err != nil {
		return "", err
	}

	if s.cfg.UploadBackups {
		if _, err := s.exporter.Upload(ctx, path); err != nil {
			return path, fmt.Errorf("backup written to %s but upload failed: %w", path, err)
		}
	}
	return path, nil
}

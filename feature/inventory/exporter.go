package inventory

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Lister returns every stored product.
type Lister interface {
	All(ctx context.Context) ([]models.Product, error)
}

// Exporter snapshots the store into a row file and optionally uploads it.
type Exporter struct {
	store  Lister
	logger *zap.Logger
	now    func() time.Time

	client storage.Client
	bucket string
	region string
	prefix string
}

// NewExporter creates an exporter reading from store.
func NewExporter(store Lister, logger *zap.Logger) *Exporter {
	return &Exporter{store: store, logger: logger, now: time.Now}
}

// SetUploadTarget configures where Upload copies backups to.
func (e *Exporter) SetUploadTarget(client storage.Client, bucket, region, prefix string) {
	e.client = client
	e.bucket = bucket
	e.region = region
	e.prefix = prefix
}

// CanUpload reports whether an upload target is configured.
func (e *Exporter) CanUpload() bool {
	return e.client != nil && e.bucket != ""
}

// Export overwrites path with every stored product and returns the number written.
func (e *Exporter) Export(ctx context.Context, path string) (int, error) {
	products, err := e.store.All(ctx)
	if err != nil {
		return 0, err
	}

	if err := WriteRows(path, FormatRows(products)); err != nil {
		return 0, err
	}

	e.logger.Info("Exported products", zap.String("file", path), zap.Int("count", len(products)))
	return len(products), nil
}

// FormatRows renders products in Header order, inverting ParseRow's coercions.
func FormatRows(products []models.Product) [][]string {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			p.Name,
			FormatPrice(p.PriceCents),
			strconv.Itoa(p.Quantity),
			FormatDate(p.UpdatedOn),
		})
	}
	return records
}

// Upload copies the file at filePath to the backup bucket under a timestamped name
// and returns the object name.
func (e *Exporter) Upload(ctx context.Context, filePath string) (string, error) {
	if !e.CanUpload() {
		return "", fmt.Errorf("backup upload is not configured")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	if err := storage.EnsureBucket(ctx, e.client, e.bucket, e.region); err != nil {
		return "", err
	}

	objectName := e.objectName(filePath)
	_, err = e.client.PutObject(ctx, e.bucket, objectName, file, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(filePath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	e.logger.Info("Uploaded backup",
		zap.String("bucket", e.bucket),
		zap.String("object", objectName),
		zap.Int64("size", info.Size()),
	)
	return objectName, nil
}

func (e *Exporter) objectName(filePath string) string {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	stamp := e.now().UTC().Format("20060102T150405Z")
	return path.Join(e.prefix, strings.TrimSuffix(base, ext)+"-"+stamp+ext)
}

func contentType(filePath string) string {
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

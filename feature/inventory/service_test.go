package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	dir := t.TempDir()
	svc := NewService(setupTestDB(t), Config{
		ImportFile:   filepath.Join(dir, "inventory.csv"),
		BackupFile:   filepath.Join(dir, "backup.csv"),
		BackupPrefix: "backups",
	}, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 18, 45, 0, 0, time.Local) }
	return svc
}

func TestService_View(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, outcome, err := svc.Add(ctx, product("Widget", 100, 1, date(2024, 1, 1)))
	require.NoError(t, err)
	assert.Equal(t, reconcile.Inserted, outcome)

	got, err := svc.View(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)

	_, err = svc.View(ctx, added.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Add(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("Stamps Today", func(t *testing.T) {
		added, outcome, err := svc.Add(ctx, product("Widget", 100, 1, time.Time{}))
		require.NoError(t, err)
		assert.Equal(t, reconcile.Inserted, outcome)
		assert.True(t, date(2024, 3, 4).Equal(added.UpdatedOn))
		assert.NotZero(t, added.ID)
	})

	t.Run("Same Day Is Skipped", func(t *testing.T) {
		got, outcome, err := svc.Add(ctx, product("Widget", 999, 9, time.Time{}))
		require.NoError(t, err)
		assert.Equal(t, reconcile.Skipped, outcome)
		assert.Equal(t, int64(100), got.PriceCents)
	})

	t.Run("Newer Date Updates", func(t *testing.T) {
		svc.now = func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local) }
		before, err := svc.store.GetByName(ctx, "Widget")
		require.NoError(t, err)

		got, outcome, err := svc.Add(ctx, product("Widget", 999, 9, time.Time{}))
		require.NoError(t, err)
		assert.Equal(t, reconcile.Updated, outcome)
		assert.Equal(t, before.ID, got.ID)
		assert.Equal(t, int64(999), got.PriceCents)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := svc.Add(ctx, product("Broken", -1, 1, time.Time{}))
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})
}

func TestService_ImportDefaultsToConfiguredFile(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, os.WriteFile(svc.cfg.ImportFile, []byte(
		"product_name,product_price,product_quantity,date_updated\n"+
			"Widget,$1.00,5,1/1/2024\n"+
			"Widget,$2.00,3,2/1/2024\n"), 0o644))

	summary, err := svc.Import(context.Background(), "", reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
}

func TestService_Backup(t *testing.T) {
	ctx := context.Background()

	t.Run("Export Only", func(t *testing.T) {
		svc := newTestService(t)
		_, _, err := svc.Add(ctx, product("Widget", 100, 1, time.Time{}))
		require.NoError(t, err)

		path, err := svc.Backup(ctx)
		require.NoError(t, err)
		assert.Equal(t, svc.cfg.BackupFile, path)

		rows, err := ReadRows(path)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "3/4/2024", rows[0].Fields[ColumnDate])
	})

	t.Run("With Upload", func(t *testing.T) {
		svc := newTestService(t)
		svc.cfg.UploadBackups = true
		svc.exporter.now = func() time.Time { return time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC) }

		client := new(mocks.Client)
		client.On("BucketExists", ctx, "inventory-backups").Return(false, nil)
		client.On("MakeBucket", ctx, "inventory-backups", minio.MakeBucketOptions{}).Return(nil)
		client.On("PutObject", ctx, "inventory-backups", "backups/backup-20240304T153000Z.csv",
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
		svc.SetUploadTarget(client, "inventory-backups", "")

		path, err := svc.Backup(ctx)
		require.NoError(t, err)
		assert.FileExists(t, path)
		client.AssertExpectations(t)
	})

	t.Run("Upload Not Configured", func(t *testing.T) {
		svc := newTestService(t)
		svc.cfg.UploadBackups = true

		path, err := svc.Backup(ctx)
		assert.ErrorContains(t, err, "upload failed")
		assert.FileExists(t, path)
	})
}

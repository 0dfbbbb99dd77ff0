package inventory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestImporter(t *testing.T) (*Importer, *Store) {
	store := NewStore(setupTestDB(t))
	engine := reconcile.NewEngine[models.Product](Adapter{}, store, zap.NewNop())
	return NewImporter(engine, zap.NewNop()), store
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_NewerRowWins(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()

	summary, err := importer.Import(ctx, []Row{
		row(2, "Widget", "$1.00", "5", "1/1/2024"),
		row(3, "Widget", "$2.00", "3", "2/1/2024"),
	}, reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Widget", all[0].Name)
	assert.Equal(t, int64(200), all[0].PriceCents)
	assert.Equal(t, 3, all[0].Quantity)
	assert.True(t, date(2024, 2, 1).Equal(all[0].UpdatedOn))
}

func TestImport_OrderIndependence(t *testing.T) {
	older := row(2, "Widget", "$1.00", "5", "1/1/2024")
	newer := row(3, "Widget", "$2.00", "3", "2/1/2024")

	for name, rows := range map[string][]Row{
		"older first": {older, newer},
		"newer first": {newer, older},
	} {
		t.Run(name, func(t *testing.T) {
			importer, store := newTestImporter(t)
			_, err := importer.Import(context.Background(), rows, reconcile.Options{})
			require.NoError(t, err)

			got, err := store.GetByName(context.Background(), "Widget")
			require.NoError(t, err)
			assert.Equal(t, int64(200), got.PriceCents)
			assert.Equal(t, 3, got.Quantity)
			assert.True(t, date(2024, 2, 1).Equal(got.UpdatedOn))
		})
	}
}

func TestImport_EqualDateKeepsFirstWrite(t *testing.T) {
	importer, store := newTestImporter(t)

	summary, err := importer.Import(context.Background(), []Row{
		row(2, "Widget", "$1.00", "5", "1/1/2024"),
		row(3, "Widget", "$9.00", "9", "1/1/2024"),
	}, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)

	got, err := store.GetByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.PriceCents)
}

func TestImport_BadRowDoesNotStopBatch(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()

	summary, err := importer.Import(ctx, []Row{
		row(2, "Gadget", "$3.00", "1", "1/1/2024"),
		row(3, "Freebie", "free", "1", "1/1/2024"),
		row(4, "Doohickey", "$4.00", "2", "1/1/2024"),
		row(5, strings.Repeat("n", 300), "$4.00", "2", "1/1/2024"),
	}, reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Errors, 2)

	assert.Equal(t, 3, summary.Errors[0].Row)
	assert.Equal(t, "Freebie", summary.Errors[0].Key)
	var perr *ParseError
	require.True(t, errors.As(summary.Errors[0].Err, &perr))
	assert.Equal(t, FieldPrice, perr.Field)

	assert.Equal(t, 5, summary.Errors[1].Row)
	assert.ErrorIs(t, summary.Errors[1].Err, ErrInvalidProduct)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImport_ReimportIsIdempotent(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()
	rows := []Row{
		row(2, "Widget", "$1.00", "5", "1/1/2024"),
		row(3, "Gadget", "$2.00", "3", "2/1/2024"),
		row(4, "Widget", "$1.50", "4", "1/15/2024"),
	}

	first, err := importer.Import(ctx, rows, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)
	assert.Equal(t, 1, first.Updated)

	second, err := importer.Import(ctx, rows, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 3, second.Skipped)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImport_NamesStayUnique(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()

	var rows []Row
	days := []string{"1/3/2024", "1/1/2024", "1/5/2024", "1/2/2024", "1/5/2024"}
	for i, day := range days {
		rows = append(rows,
			row(2*i+2, "Widget", "$1.00", "1", day),
			row(2*i+3, "Gadget", "$1.00", "1", day),
		)
	}

	_, err := importer.Import(ctx, rows, reconcile.Options{})
	require.NoError(t, err)

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		assert.True(t, date(2024, 1, 5).Equal(p.UpdatedOn), "%s at %s", p.Name, p.UpdatedOn)
	}
}

func TestImport_DryRunPersistsNothing(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()

	summary, err := importer.Import(ctx, []Row{
		row(2, "Widget", "$1.00", "5", "1/1/2024"),
		row(3, "Widget", "$2.00", "3", "2/1/2024"),
		row(4, "Gadget", "nope", "3", "2/1/2024"),
	}, reconcile.Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Failed)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportFile_CSV(t *testing.T) {
	importer, store := newTestImporter(t)
	ctx := context.Background()

	path := writeFile(t, "inventory.csv", strings.Join([]string{
		"product_name,product_price,product_quantity,date_updated",
		`"Widget, large","$12.50 each",5,3/4/2024`,
		"",
		"Gadget,free,1,3/4/2024",
		"Doohickey,$0.99,12,03/05/2024",
	}, "\n")+"\n")

	summary, err := importer.ImportFile(ctx, path, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 4, summary.Errors[0].Row)

	got, err := store.GetByName(ctx, "Widget, large")
	require.NoError(t, err)
	assert.Equal(t, int64(1250), got.PriceCents)
}

func TestImportFile_Errors(t *testing.T) {
	importer, _ := newTestImporter(t)
	ctx := context.Background()

	t.Run("Missing file", func(t *testing.T) {
		_, err := importer.ImportFile(ctx, filepath.Join(t.TempDir(), "nope.csv"), reconcile.Options{})
		assert.Error(t, err)
	})

	t.Run("Missing column", func(t *testing.T) {
		path := writeFile(t, "bad.csv", "product_name,product_price\nWidget,$1.00\n")
		_, err := importer.ImportFile(ctx, path, reconcile.Options{})
		assert.ErrorContains(t, err, "product_quantity")
	})

	t.Run("Empty file", func(t *testing.T) {
		path := writeFile(t, "empty.csv", "")
		_, err := importer.ImportFile(ctx, path, reconcile.Options{})
		assert.ErrorContains(t, err, "header")
	})
}

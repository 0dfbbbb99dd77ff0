package inventory

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a migrated in-memory SQLite database private to the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, NewStore(db).Migrate(context.Background()))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func product(name string, cents int64, qty int, updated time.Time) models.Product {
	return models.Product{Name: name, PriceCents: cents, Quantity: qty, UpdatedOn: updated}
}

func row(line int, name, price, qty, updated string) Row {
	return Row{Line: line, Fields: map[string]string{
		ColumnName:     name,
		ColumnPrice:    price,
		ColumnQuantity: qty,
		ColumnDate:     updated,
	}}
}

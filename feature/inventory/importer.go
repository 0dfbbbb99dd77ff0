package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Importer parses source rows and feeds them to the reconcile engine.
type Importer struct {
	engine *reconcile.Engine[models.Product]
	logger *zap.Logger
}

// NewImporter creates an importer driving engine.
func NewImporter(engine *reconcile.Engine[models.Product], logger *zap.Logger) *Importer {
	return &Importer{engine: engine, logger: logger}
}

// ImportFile reads path (.csv or .xlsx) and reconciles every row.
// Failing to read the file is returned as an error; bad rows are reported in the summary.
func (i *Importer) ImportFile(ctx context.Context, path string, opts reconcile.Options) (*reconcile.Summary, error) {
	l := logger.WithBatch(i.logger, uuid.NewString())

	checksum, err := utils.FileChecksum(path)
	if err != nil {
		return nil, err
	}

	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}

	l.Info("Importing products",
		zap.String("file", path),
		zap.String("checksum", checksum),
		zap.Int("rows", len(rows)),
		zap.Bool("dry_run", opts.DryRun),
	)

	summary, err := i.importRows(ctx, l, rows, opts)
	if err != nil {
		l.Error("Import aborted", zap.Error(err))
		return summary, err
	}

	l.Info("Import finished",
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// Import reconciles rows one at a time.
// Rows that fail to parse or validate are counted as failed and the batch continues;
// a store failure aborts the batch, leaving earlier rows committed.
func (i *Importer) Import(ctx context.Context, rows []Row, opts reconcile.Options) (*reconcile.Summary, error) {
	return i.importRows(ctx, i.logger, rows, opts)
}

func (i *Importer) importRows(ctx context.Context, l *zap.Logger, rows []Row, opts reconcile.Options) (*reconcile.Summary, error) {
	summary := &reconcile.Summary{DryRun: opts.DryRun}

	err := i.engine.Batch(ctx, opts, func(e *reconcile.Engine[models.Product]) error {
		for _, row := range rows {
			name := row.Fields[ColumnName]

			product, err := ParseRow(row.Fields)
			if err == nil {
				var outcome reconcile.Outcome
				_, outcome, err = e.Reconcile(ctx, product)
				if err == nil {
					summary.Add(outcome)
					continue
				}
				if !errors.Is(err, ErrInvalidProduct) {
					return fmt.Errorf("row %d: %w", row.Line, err)
				}
			}

			summary.Fail(reconcile.RowError{Row: row.Line, Key: name, Err: err})
			l.Warn("Row rejected",
				zap.Int("row", row.Line),
				zap.String("name", name),
				zap.Error(err),
			)
		}
		return nil
	})

	return summary, err
}

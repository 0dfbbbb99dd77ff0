package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Engine merges candidates into a Store under a last-write-wins policy.
type Engine[T any] struct {
	adapter Adapter[T]
	store   Store[T]
	logger  *zap.Logger
}

// NewEngine creates an engine bound to store.
func NewEngine[T any](adapter Adapter[T], store Store[T], logger *zap.Logger) *Engine[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine[T]{
		adapter: adapter,
		store:   store,
		logger:  logger.With(zap.String("adapter", adapter.Name())),
	}
}

// Reconcile decides whether candidate is a fresh insert, an update of the item
// stored under the same key, or stale. It returns the item as stored afterwards.
//
// A duplicate-key failure on insert means the key appeared between the lookup and
// the write; the engine re-reads the stored item and continues as an update check.
func (e *Engine[T]) Reconcile(ctx context.Context, candidate T) (T, Outcome, error) {
	var zero T
	key := e.adapter.Key(candidate)

	existing, err := e.store.GetByName(ctx, key)
	if errors.Is(err, ErrNotFound) {
		stored, insertErr := e.store.Insert(ctx, candidate)
		if insertErr == nil {
			e.logger.Debug("Inserted", zap.String("key", key))
			return stored, Inserted, nil
		}
		if !errors.Is(insertErr, ErrDuplicateKey) {
			return zero, "", fmt.Errorf("failed to insert %q: %w", key, insertErr)
		}
		existing, err = e.store.GetByName(ctx, key)
	}
	if err != nil {
		return zero, "", fmt.Errorf("failed to look up %q: %w", key, err)
	}

	if !e.adapter.Newer(candidate, existing) {
		e.logger.Debug("Skipped, stored item is not older", zap.String("key", key))
		return existing, Skipped, nil
	}

	merged := e.adapter.Merge(existing, candidate)
	if err := e.store.Update(ctx, merged); err != nil {
		return zero, "", fmt.Errorf("failed to update %q: %w", key, err)
	}

	e.logger.Debug("Updated", zap.String("key", key))
	return merged, Updated, nil
}

// Batch runs fn with an engine for one batch.
// With opts.DryRun the engine handed to fn is bound to a transactional view of the
// store which is rolled back once fn returns, so the store must implement Transactor.
func (e *Engine[T]) Batch(ctx context.Context, opts Options, fn func(*Engine[T]) error) error {
	if !opts.DryRun {
		return fn(e)
	}

	tx, ok := e.store.(Transactor[T])
	if !ok {
		return fmt.Errorf("store for adapter %s does not support dry runs", e.adapter.Name())
	}

	err := tx.Transaction(ctx, func(s Store[T]) error {
		if err := fn(e.withStore(s)); err != nil {
			return err
		}
		return errDryRun
	})
	if errors.Is(err, errDryRun) {
		return nil
	}
	return err
}

func (e *Engine[T]) withStore(s Store[T]) *Engine[T] {
	return &Engine[T]{adapter: e.adapter, store: s, logger: e.logger}
}

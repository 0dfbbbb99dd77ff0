// Package reconcile provides a generic last-write-wins merge engine for keyed stores.
//
// A batch of externally supplied items is folded into an existing store one item at
// a time. Each call decides between three outcomes:
//   - Inserted: no stored item has the candidate's key, so the candidate is stored.
//   - Updated: the candidate is strictly fresher, so its fields overwrite the stored item.
//   - Skipped: the stored item is at least as fresh and stays untouched.
//
// # Architecture
//
// 1. Engine: drives lookups and writes, and owns the duplicate-key fallback so that
// callers never observe ErrDuplicateKey.
//
// 2. Adapter: model-specific logic (natural key, freshness comparison, merge).
//
// 3. Store: the persistence contract. Stores that implement Transactor also support
// dry-run batches, which are executed inside a transaction that is always rolled back.
//
// # Idempotency
//
// Because equal freshness resolves to Skipped, reconciling the same batch twice
// never creates duplicates, and for strictly ordered freshness the final state does
// not depend on submission order.
//
// # Usage Example
//
//	engine := reconcile.NewEngine[models.Product](inventory.Adapter{}, store, logger)
//
//	var summary reconcile.Summary
//	err := engine.Batch(ctx, reconcile.Options{DryRun: true}, func(e *reconcile.Engine[models.Product]) error {
//	    for _, p := range products {
//	        _, outcome, err := e.Reconcile(ctx, p)
//	        if err != nil {
//	            return err
//	        }
//	        summary.Add(outcome)
//	    }
//	    return nil
//	})
package reconcile

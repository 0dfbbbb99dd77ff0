// Package inventory implements the product inventory feature.
//
// Products are imported from row files into a persistent store, viewed and added
// one at a time, and exported back to row files.
//
// # Reconcile Adapter
//
// Imports and manual additions go through the generic `core/reconcile` engine via
// Adapter: products are keyed by name, and a submission only overwrites the stored
// product when its date updated is strictly later. Re-importing the same file is
// therefore idempotent.
//
// # Components
//
//   - Store: gorm-backed persistence with a unique name index.
//   - ParseRow: coerces raw cells (price text, quantity, M/D/YYYY date) into a Product.
//   - Importer: runs a batch, collecting per-row failures instead of aborting.
//   - Exporter: overwrites a .csv or .xlsx snapshot and optionally uploads it.
//   - Service: the operations used by the CLI and the interactive shell.
//
// # File Format
//
//	product_name,product_price,product_quantity,date_updated
//	Widget,$1.00,5,1/1/2024
package inventory

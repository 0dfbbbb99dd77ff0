package reconcile

import "context"

// Adapter defines the model-specific half of a reconciliation.
// The engine only knows how to look items up and write them back; the adapter
// decides what the natural key is, which side is fresher, and how a newer
// candidate is folded into the stored item.
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "product").
	Name() string

	// Key returns the natural key of an item. It must be non-empty for valid items.
	Key(item T) string

	// Newer reports whether candidate should overwrite existing.
	// Returning false for equal freshness keeps the already stored item.
	Newer(candidate, existing T) bool

	// Merge copies the mutable fields of candidate onto existing and returns the result.
	// The stored identity of existing must be preserved.
	Merge(existing, candidate T) T
}

// Store is the persistence contract the engine drives.
type Store[T any] interface {
	// GetByName returns the item stored under key, or an error wrapping ErrNotFound.
	GetByName(ctx context.Context, key string) (T, error)

	// Insert persists a new item and returns it with its identity assigned.
	// It fails with an error wrapping ErrDuplicateKey if the key already exists.
	Insert(ctx context.Context, item T) (T, error)

	// Update overwrites the stored item with the same identity.
	Update(ctx context.Context, item T) error
}

// Transactor is implemented by stores that can run a batch against a
// transactional view of themselves. The transaction commits when fn returns nil.
type Transactor[T any] interface {
	Transaction(ctx context.Context, fn func(Store[T]) error) error
}

package inventory

import (
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"
)

// Adapter plugs products into the reconcile engine.
// Products are keyed by name and the later date_updated wins; equal dates keep
// the stored product.
type Adapter struct{}

var _ reconcile.Adapter[models.Product] = Adapter{}

// Name returns the adapter name.
func (Adapter) Name() string {
	return "product"
}

// Key returns the product name.
func (Adapter) Key(p models.Product) string {
	return p.Name
}

// Newer reports whether candidate carries a strictly later date than existing.
func (Adapter) Newer(candidate, existing models.Product) bool {
	return models.DateOf(candidate.UpdatedOn).After(models.DateOf(existing.UpdatedOn))
}

// Merge copies quantity, price and date from candidate, keeping the stored id and name.
func (Adapter) Merge(existing, candidate models.Product) models.Product {
	existing.Quantity = candidate.Quantity
	existing.PriceCents = candidate.PriceCents
	existing.UpdatedOn = models.DateOf(candidate.UpdatedOn)
	return existing
}

package inventory

import (
	"errors"
	"fmt"

	"inventory-manager/core/reconcile"
)

var (
	// ErrNotFound is returned when no product matches an id or name.
	ErrNotFound = reconcile.ErrNotFound

	// ErrDuplicateName is returned by Store.Insert when the name is already stored.
	// Callers that want merge semantics go through the reconcile engine instead.
	ErrDuplicateName = reconcile.ErrDuplicateKey

	// ErrInvalidProduct is returned when a product breaks a field invariant.
	ErrInvalidProduct = errors.New("invalid product")
)

// Fields reported by ParseError.
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldDate     = "date"
)

// ParseError reports a malformed field in one source row.
type ParseError struct {
	// Field is one of FieldName, FieldPrice, FieldQuantity or FieldDate.
	Field string
	// Value is the raw cell text.
	Value string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

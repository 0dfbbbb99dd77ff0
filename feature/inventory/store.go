package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Store persists products in the products table.
// Every write runs in its own autocommit statement unless the store was handed out
// by Transaction.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

var (
	_ reconcile.Store[models.Product]      = (*Store)(nil)
	_ reconcile.Transactor[models.Product] = (*Store)(nil)
)

// NewStore creates a store on top of db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		validate: validator.New(),
	}
}

// Migrate creates the products table and its unique name index if missing.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}

// GetByID returns the product with the given id.
func (s *Store) GetByID(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("product_id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return normalize(p), nil
}

// GetByName returns the product with the given name. Names are case-sensitive.
func (s *Store) GetByName(ctx context.Context, name string) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("product_name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, fmt.Errorf("product %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to get product %q: %w", name, err)
	}
	return normalize(p), nil
}

// Insert stores p under a freshly assigned id and returns the stored row.
// Any id already set on p is ignored.
func (s *Store) Insert(ctx context.Context, p models.Product) (models.Product, error) {
	if err := s.check(p); err != nil {
		return models.Product{}, err
	}

	p.ID = 0
	p.UpdatedOn = models.DateOf(p.UpdatedOn)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("product_name = ?", p.Name).Count(&count).Error; err != nil {
		return models.Product{}, fmt.Errorf("failed to check product %q: %w", p.Name, err)
	}
	if count > 0 {
		return models.Product{}, fmt.Errorf("product %q: %w", p.Name, ErrDuplicateName)
	}

	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Product{}, fmt.Errorf("product %q: %w", p.Name, ErrDuplicateName)
		}
		return models.Product{}, fmt.Errorf("failed to insert product %q: %w", p.Name, err)
	}
	return p, nil
}

// Update overwrites quantity, price and date of the row matching p.ID, or p.Name
// when p.ID is zero.
func (s *Store) Update(ctx context.Context, p models.Product) error {
	if err := s.check(p); err != nil {
		return err
	}

	match := s.db.WithContext(ctx).Model(&models.Product{})
	if p.ID != 0 {
		match = match.Where("product_id = ?", p.ID)
	} else {
		match = match.Where("product_name = ?", p.Name)
	}

	result := match.Updates(map[string]any{
		"product_quantity": p.Quantity,
		"product_price":    p.PriceCents,
		"date_updated":     models.DateOf(p.UpdatedOn),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update product %q: %w", p.Name, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Some drivers report zero affected rows when the values did not change.
	if p.ID != 0 {
		_, err := s.GetByID(ctx, p.ID)
		return err
	}
	_, err := s.GetByName(ctx, p.Name)
	return err
}

// All returns every product in insertion order.
func (s *Store) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("product_id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		products[i] = normalize(products[i])
	}
	return products, nil
}

// Transaction runs fn against a store bound to a database transaction.
// The transaction commits if fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(reconcile.Store[models.Product]) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, validate: s.validate})
	})
}

func (s *Store) check(p models.Product) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	if p.UpdatedOn.IsZero() {
		return fmt.Errorf("%w: missing date updated", ErrInvalidProduct)
	}
	return nil
}

func normalize(p models.Product) models.Product {
	p.UpdatedOn = models.DateOf(p.UpdatedOn)
	return p
}

package models

import "time"

// Product is one stocked item. Name is the natural key and is unique in the store.
// ID is zero until the store assigns it on first insert.
type Product struct {
	ID         uint      `gorm:"column:product_id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:product_name;size:255;not null;uniqueIndex" json:"name" validate:"required,max=255"`
	Quantity   int       `gorm:"column:product_quantity;not null;default:0" json:"quantity" validate:"gte=0"`
	PriceCents int64     `gorm:"column:product_price;not null;default:0" json:"price_cents" validate:"gte=0"`
	UpdatedOn  time.Time `gorm:"column:date_updated;type:date;not null" json:"updated_on"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// DateOf truncates t to its calendar date at midnight UTC.
// The wall-clock date of t is kept regardless of its location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

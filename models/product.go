package models

import "time"

// Product represents a catalog item. Unlike User it carries no
// uniqueness constraint; any number of products may share a name.
type Product struct {
	// ID is the surrogate identifier assigned by the database.
	ID int64 `json:"id"`

	// Name is the product display name. Required, non-empty.
	Name string `json:"name"`

	// Description is optional free text, defaults to empty.
	Description string `json:"description"`

	// Price in major currency units, 0 <= Price <= 999999.99.
	Price float64 `json:"price"`

	// Stock is the number of units on hand, 0 <= Stock <= 1_000_000.
	Stock int64 `json:"stock"`

	// CreatedAt is the timestamp when the product was created.
	CreatedAt time.Time `json:"created_at"`
}

// ProductUpdate describes a partial update of a Product. Only non-nil
// fields are applied; the rest keep their stored values.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
}

// Empty reports whether the update carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Stock == nil
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

package validators

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

const (
	FieldName  = "name"
	FieldPrice = "price"
	FieldStock = "stock"
)

const (
	maxPrice = 999999.99
	maxStock = 1_000_000
)

type ProductValidator struct {
}

func NewProductValidator() Validator {
	return &ProductValidator{}
}

func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.ProductUpdate:
		return v.validateProductUpdate(ctx, value)
	case *models.ProductUpdate:
		return v.validateProductUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrice, FieldStock}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if product.Name == "" {
				return ErrEmptyName
			}
		case FieldPrice:
			if !IsValidPrice(product.Price) {
				return ErrInvalidPrice
			}
		case FieldStock:
			if !IsValidStock(product.Stock) {
				return ErrInvalidStock
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProductUpdate checks only the fields the update names. An empty
// update is valid: callers treat it as a no-op.
func (v *ProductValidator) validateProductUpdate(_ context.Context, update models.ProductUpdate) error {
	if update.Name != nil && *update.Name == "" {
		return ErrEmptyName
	}
	if update.Price != nil && !IsValidPrice(*update.Price) {
		return ErrInvalidPrice
	}
	if update.Stock != nil && !IsValidStock(*update.Stock) {
		return ErrInvalidStock
	}

	return nil
}

// IsValidPrice reports whether price lies in [0, 999999.99].
func IsValidPrice(price float64) bool {
	return price >= 0 && price <= maxPrice
}

// IsValidStock reports whether stock lies in [0, 1_000_000].
func IsValidStock(stock int64) bool {
	return stock >= 0 && stock <= maxStock
}

package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// UserRepository is the persistence contract for User entities.
// User records are immutable after creation: there is no update operation.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)
}

// ProductRepository is the persistence contract for Product entities.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

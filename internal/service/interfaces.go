package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, bool, error)
	GetAllUsers(ctx context.Context) ([]models.User, bool, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, bool, error)
	GetAllProducts(ctx context.Context) ([]models.Product, bool, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// SystemService backs the operational endpoints. Health never returns an
// error: degraded dependencies are reported inside the response instead.
type SystemService interface {
	Health(ctx context.Context) models.HealthResponse
	Ready(ctx context.Context) error
	Stats(ctx context.Context) (models.StatsResponse, error)
}

package service

import (
	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
)

type Services struct {
	UserService    UserService
	ProductService ProductService
	SystemService  SystemService
}

func NewServices(repos store.Repositories, db *store.DB, c cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	ttl := cfg.Storage.Redis.CacheTTL
	return &Services{
		UserService:    NewUserService(repos.UserRepository, c, ttl, logger),
		ProductService: NewProductService(repos.ProductRepository, c, ttl, logger),
		SystemService:  NewSystemService(repos, db, c, cfg.App.Version, logger),
	}
}

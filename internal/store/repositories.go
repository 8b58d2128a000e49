package store

import (
	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

// Repositories bundles every persistence-layer contract for injection into
// the service layer.
type Repositories struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
	}
}

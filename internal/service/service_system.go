package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// DatabasePinger is the slice of the store layer the health endpoint needs.
type DatabasePinger interface {
	Liveness(ctx context.Context) error
}

type systemService struct {
	repos   store.Repositories
	db      DatabasePinger
	cache   cache.Cache
	version string

	logger *logger.Logger
}

func NewSystemService(repos store.Repositories, db DatabasePinger, c cache.Cache, version string, logger *logger.Logger) SystemService {
	return &systemService{
		repos:   repos,
		db:      db,
		cache:   c,
		version: version,
		logger:  logger,
	}
}

// Health probes both backends. The cache being down does not degrade the
// overall status since every read path works without it.
func (s *systemService) Health(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{
		Status:    statusHealthy,
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		Database:  statusHealthy,
		Redis:     statusHealthy,
		Version:   s.version,
	}

	if err := s.db.Liveness(ctx); err != nil {
		resp.Status = statusUnhealthy
		resp.Database = statusUnhealthy + ": " + err.Error()
	}
	if err := s.cache.Ping(ctx); err != nil {
		resp.Redis = "unavailable"
	}

	return resp
}

// Ready reports whether the service can take traffic. Only the database
// matters here.
func (s *systemService) Ready(ctx context.Context) error {
	return s.db.Liveness(ctx)
}

func (s *systemService) Stats(ctx context.Context) (models.StatsResponse, error) {
	users, err := s.repos.UserRepository.CountUsers(ctx)
	if err != nil {
		return models.StatsResponse{}, err
	}

	products, err := s.repos.ProductRepository.CountProducts(ctx)
	if err != nil {
		return models.StatsResponse{}, err
	}

	return models.StatsResponse{
		Users:     users,
		Products:  products,
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
	}, nil
}

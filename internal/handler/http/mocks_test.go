package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-chi/chi/v5"
)

type mockUserService struct {
	CreateUserFn  func(ctx context.Context, user models.User) (models.User, error)
	GetUserFn     func(ctx context.Context, id int64) (models.User, bool, error)
	GetAllUsersFn func(ctx context.Context) ([]models.User, bool, error)
	DeleteUserFn  func(ctx context.Context, id int64) error
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFn(ctx, user)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, bool, error) {
	return m.GetUserFn(ctx, id)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, bool, error) {
	return m.GetAllUsersFn(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.DeleteUserFn(ctx, id)
}

type mockProductService struct {
	CreateProductFn  func(ctx context.Context, product models.Product) (models.Product, error)
	GetProductFn     func(ctx context.Context, id int64) (models.Product, bool, error)
	GetAllProductsFn func(ctx context.Context) ([]models.Product, bool, error)
	UpdateProductFn  func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProductFn  func(ctx context.Context, id int64) error
}

func (m *mockProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.CreateProductFn(ctx, product)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (models.Product, bool, error) {
	return m.GetProductFn(ctx, id)
}

func (m *mockProductService) GetAllProducts(ctx context.Context) ([]models.Product, bool, error) {
	return m.GetAllProductsFn(ctx)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return m.UpdateProductFn(ctx, id, update)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) error {
	return m.DeleteProductFn(ctx, id)
}

type mockSystemService struct {
	HealthFn func(ctx context.Context) models.HealthResponse
	ReadyFn  func(ctx context.Context) error
	StatsFn  func(ctx context.Context) (models.StatsResponse, error)
}

func (m *mockSystemService) Health(ctx context.Context) models.HealthResponse {
	return m.HealthFn(ctx)
}

func (m *mockSystemService) Ready(ctx context.Context) error {
	return m.ReadyFn(ctx)
}

func (m *mockSystemService) Stats(ctx context.Context) (models.StatsResponse, error) {
	return m.StatsFn(ctx)
}

// testRouterConfig tunes the security components wired into a test router.
type testRouterConfig struct {
	rateLimitMax int
	maxBodyBytes int64
	trustProxy   bool
}

func defaultTestRouterConfig() testRouterConfig {
	return testRouterConfig{rateLimitMax: 1000, maxBodyBytes: 1 << 20}
}

// newTestRouter builds a fully wired router around mocked services with
// real security components, mirroring production composition.
func newTestRouter(services *service.Services, cfg testRouterConfig) (*chi.Mux, *Handler) {
	log := logger.Nop()
	events := security.NewEvents(log, cfg.trustProxy)
	h := NewHandler(services, SecurityComponents{
		Limiter:          security.NewLimiter(cfg.rateLimitMax, time.Minute),
		Blocklist:        security.NewBlocklist(events),
		Inspector:        security.NewInspector(cfg.maxBodyBytes),
		Events:           events,
		TrustProxyHeader: cfg.trustProxy,
	}, log)

	return h.Init(), h
}

func emptyServices() *service.Services {
	return &service.Services{
		UserService: &mockUserService{
			GetAllUsersFn: func(ctx context.Context) ([]models.User, bool, error) {
				return []models.User{}, false, nil
			},
		},
		ProductService: &mockProductService{
			GetAllProductsFn: func(ctx context.Context) ([]models.Product, bool, error) {
				return []models.Product{}, false, nil
			},
		},
		SystemService: &mockSystemService{
			HealthFn: func(ctx context.Context) models.HealthResponse {
				return models.HealthResponse{Status: "healthy", Database: "healthy", Redis: "healthy", Version: "test"}
			},
			ReadyFn: func(ctx context.Context) error { return nil },
			StatsFn: func(ctx context.Context) (models.StatsResponse, error) {
				return models.StatsResponse{}, nil
			},
		},
	}
}

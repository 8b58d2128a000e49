package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-catalog-api/models"
)

type mockUserRepository struct {
	CreateUserFn  func(ctx context.Context, user models.User) (models.User, error)
	GetUserFn     func(ctx context.Context, id int64) (models.User, error)
	GetAllUsersFn func(ctx context.Context) ([]models.User, error)
	DeleteUserFn  func(ctx context.Context, id int64) error
	CountUsersFn  func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFn(ctx, user)
}

func (m *mockUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.GetUserFn(ctx, id)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.GetAllUsersFn(ctx)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	return m.DeleteUserFn(ctx, id)
}

func (m *mockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return m.CountUsersFn(ctx)
}

type mockProductRepository struct {
	CreateProductFn  func(ctx context.Context, product models.Product) (models.Product, error)
	GetProductFn     func(ctx context.Context, id int64) (models.Product, error)
	GetAllProductsFn func(ctx context.Context) ([]models.Product, error)
	UpdateProductFn  func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProductFn  func(ctx context.Context, id int64) error
	CountProductsFn  func(ctx context.Context) (int64, error)
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.CreateProductFn(ctx, product)
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.GetProductFn(ctx, id)
}

func (m *mockProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.GetAllProductsFn(ctx)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return m.UpdateProductFn(ctx, id, update)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	return m.DeleteProductFn(ctx, id)
}

func (m *mockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return m.CountProductsFn(ctx)
}

// fakeCache is an in-memory cache recording every operation so tests can
// assert on the cache-aside choreography.
type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	sets        []string
	invalidated []string
	pingErr     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.entries[key]
	return data, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = value
	f.sets = append(f.sets, key)
}

func (f *fakeCache) Invalidate(_ context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, key := range keys {
		delete(f.entries, key)
	}
	f.invalidated = append(f.invalidated, keys...)
}

func (f *fakeCache) Ping(context.Context) error {
	return f.pingErr
}

type mockPinger struct {
	LivenessFn func(ctx context.Context) error
}

func (m *mockPinger) Liveness(ctx context.Context) error {
	return m.LivenessFn(ctx)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllProducts(t *testing.T) {
	services := emptyServices()
	services.ProductService = &mockProductService{
		GetAllProductsFn: func(ctx context.Context) ([]models.Product, bool, error) {
			return []models.Product{{ID: 1, Name: "Widget", Price: 9.99, Stock: 5}}, false, nil
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "GET", "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Cached)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Widget", resp.Products[0].Name)
}

func TestGetProduct(t *testing.T) {
	services := emptyServices()
	services.ProductService = &mockProductService{
		GetProductFn: func(ctx context.Context, id int64) (models.Product, bool, error) {
			if id != 3 {
				return models.Product{}, false, store.ErrProductNotFound
			}
			return models.Product{ID: 3, Name: "Widget", Price: 9.99, Stock: 5}, true, nil
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "GET", "/api/products/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/api/products/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct(t *testing.T) {
	var captured models.Product
	services := emptyServices()
	services.ProductService = &mockProductService{
		CreateProductFn: func(ctx context.Context, product models.Product) (models.Product, error) {
			captured = product
			product.ID = 1
			return product, nil
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	body := `{"name":"Widget","description":"A <fine> widget","price":9.99,"stock":5}`
	w := doRequest(router, "POST", "/api/products", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "A fine widget", captured.Description, "markup characters must be stripped")

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateProduct_Validation(t *testing.T) {
	router, _ := newTestRouter(emptyServices(), defaultTestRouterConfig())

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing name", body: `{"price":9.99}`, want: "Name and price are required"},
		{name: "missing price", body: `{"name":"Widget"}`, want: "Name and price are required"},
		{name: "negative price", body: `{"name":"Widget","price":-1}`, want: "Price must be"},
		{name: "price too high", body: `{"name":"Widget","price":10000000}`, want: "Price must be"},
		{name: "negative stock", body: `{"name":"Widget","price":9.99,"stock":-5}`, want: "Stock must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/products", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	var captured models.ProductUpdate
	services := emptyServices()
	services.ProductService = &mockProductService{
		UpdateProductFn: func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
			captured = update
			return models.Product{ID: id, Name: "Widget", Price: 19.99, Stock: 5}, nil
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "PUT", "/api/products/3", `{"price":19.99}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, captured.Price)
	assert.Equal(t, 19.99, *captured.Price)
	assert.Nil(t, captured.Name, "fields absent from the body must stay untouched")
	assert.Nil(t, captured.Stock)
}

func TestUpdateProduct_EmptyBodyReturnsUnchangedProduct(t *testing.T) {
	var captured models.ProductUpdate
	services := emptyServices()
	services.ProductService = &mockProductService{
		UpdateProductFn: func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
			captured = update
			return models.Product{ID: id, Name: "Widget", Price: 9.99, Stock: 5}, nil
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "PUT", "/api/products/3", `{}`, nil)
	require.Equal(t, http.StatusOK, w.Code, "an empty update is a no-op, not an error")
	assert.Contains(t, w.Body.String(), "Widget")
	assert.True(t, captured.Empty())
}

func TestUpdateProduct_NotFound(t *testing.T) {
	services := emptyServices()
	services.ProductService = &mockProductService{
		UpdateProductFn: func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "PUT", "/api/products/404", `{"price":19.99}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	services := emptyServices()
	services.ProductService = &mockProductService{
		DeleteProductFn: func(ctx context.Context, id int64) error { return nil },
	}
	router, _ := newTestRouter(services, defaultTestRouterConfig())

	w := doRequest(router, "DELETE", "/api/products/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())
}

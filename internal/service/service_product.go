// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

type productService struct {
	productRepository store.ProductRepository
	cache             cache.Cache
	cacheTTL          time.Duration

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, c cache.Cache, cacheTTL time.Duration, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		cache:             c,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		return models.Product{}, err
	}

	s.cache.Invalidate(ctx, cache.ProductsAllKey)
	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, bool, error) {
	key := cache.ProductKey(id)

	if data, ok := s.cache.Get(ctx, key); ok {
		var product models.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return product, true, nil
		}
		logger.FromContext(ctx).Warn().Str("key", key).Msg("discarding undecodable cache entry")
		s.cache.Invalidate(ctx, key)
	}

	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, false, err
	}

	if data, err := json.Marshal(product); err == nil {
		s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	return product, false, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]models.Product, bool, error) {
	if data, ok := s.cache.Get(ctx, cache.ProductsAllKey); ok {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, true, nil
		}
		logger.FromContext(ctx).Warn().Str("key", cache.ProductsAllKey).Msg("discarding undecodable cache entry")
		s.cache.Invalidate(ctx, cache.ProductsAllKey)
	}

	products, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(products); err == nil {
		s.cache.Set(ctx, cache.ProductsAllKey, data, s.cacheTTL)
	}
	return products, false, nil
}

// UpdateProduct applies a partial update and invalidates both the entity
// key and the listing only after the repository confirms the write. An
// update naming no fields is a no-op answered with the current row.
func (s *productService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if update.Empty() {
		return s.productRepository.GetProduct(ctx, id)
	}

	updated, err := s.productRepository.UpdateProduct(ctx, id, update)
	if err != nil {
		return models.Product{}, err
	}

	s.cache.Invalidate(ctx, cache.ProductKey(id), cache.ProductsAllKey)
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.ProductKey(id), cache.ProductsAllKey)
	return nil
}

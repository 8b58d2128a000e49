package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Unlike users, products support partial updates via a
// dynamically built UPDATE statement (see [buildProductUpdateQuery]).
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new product and returns the fully populated
// [models.Product] with server-assigned fields (ID, CreatedAt).
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct, product.Name, product.Description, product.Price, product.Stock)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: insert failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: scanning error")
		return models.Product{}, err
	}

	return product, nil
}

// GetProduct retrieves a single product by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProductNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, getProductByID, id)

	if err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// GetAllProducts retrieves every product record ordered by id. An empty
// table yields an empty (non-nil) slice.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProducts)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.GetAllProducts").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt); err != nil {
			log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("error: scanning error")
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return products, nil
}

// UpdateProduct applies a partial update to the product identified by id.
// Only non-nil fields of update are written; the remaining columns keep
// their stored values. The updated row is returned in full.
//
// Error handling:
//   - [ErrNoFieldsToUpdate] when update names no fields.
//   - [sql.ErrNoRows] from RETURNING → [ErrProductNotFound].
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProductUpdateQuery(id, update)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// DeleteProduct removes a product by id.
//
// Returns [ErrProductNotFound] when no row was affected.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.DeleteProduct").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountProducts reports the current number of product rows.
func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countProducts).Scan(&count); err != nil {
		log.Err(err).Str("func", "*productRepository.CountProducts").Msg("error: count failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

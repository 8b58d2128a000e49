package store

import (
	"github.com/MKhiriev/go-catalog-api/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	livenessQuery = `SELECT 1;`

	createUser = `INSERT INTO users (username, email)
    VALUES ($1, $2)
    RETURNING id, username, email, created_at;`

	getUserByID = `SELECT id, username, email, created_at
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, username, email, created_at
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	createProduct = `INSERT INTO products (name, description, price, stock)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, description, price, stock, created_at;`

	getProductByID = `SELECT id, name, description, price, stock, created_at
    FROM products
    WHERE id = $1;`

	getAllProducts = `SELECT id, name, description, price, stock, created_at
    FROM products
    ORDER BY id;`

	deleteProduct = `DELETE FROM products
    WHERE id = $1;`

	countProducts = `SELECT COUNT(*) FROM products;`
)

// buildProductUpdateQuery dynamically builds the partial UPDATE statement
// for a product. Only non-nil fields of update contribute SET clauses; the
// statement returns the full post-update row so callers receive the
// canonical database representation.
//
// Returns ErrNoFieldsToUpdate when update carries no fields.
func buildProductUpdateQuery(id int64, update models.ProductUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := sq.Update("products").
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Stock != nil {
		builder = builder.Set("stock", *update.Stock)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, price, stock, created_at").
		ToSql()
}

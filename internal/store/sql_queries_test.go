package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductUpdateQuery_AllFields(t *testing.T) {
	name := "Widget"
	desc := "updated"
	price := 39.99
	stock := int64(7)

	query, args, err := buildProductUpdateQuery(1, models.ProductUpdate{
		Name:        &name,
		Description: &desc,
		Price:       &price,
		Stock:       &stock,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE products SET name = $1, description = $2, price = $3, stock = $4 WHERE id = $5 RETURNING id, name, description, price, stock, created_at",
		query)
	assert.Equal(t, []any{name, desc, price, stock, int64(1)}, args)
}

func TestBuildProductUpdateQuery_SingleField(t *testing.T) {
	price := 39.99

	query, args, err := buildProductUpdateQuery(5, models.ProductUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE products SET price = $1 WHERE id = $2 RETURNING id, name, description, price, stock, created_at",
		query)
	assert.Equal(t, []any{price, int64(5)}, args)
}

func TestBuildProductUpdateQuery_NoFields(t *testing.T) {
	_, _, err := buildProductUpdateQuery(1, models.ProductUpdate{})
	assert.True(t, errors.Is(err, ErrNoFieldsToUpdate))
}

package store

import (
	"github.com/MKhiriev/go-catalog-api/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

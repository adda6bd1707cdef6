package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/MKhiriev/chain-vault/migrations"
)

// OpenSQLite opens (creating if needed) the cache database at path and
// applies pending migrations. Pass ":memory:" for an ephemeral cache.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache database: %w", err)
	}
	return db, nil
}

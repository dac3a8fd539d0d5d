package store

import (
	"database/sql"

	"github.com/abhay963/Notes-Saver/internal/logger"
	"github.com/abhay963/Notes-Saver/migrations"
)

// DB wraps the SQLite connection used by the key-value backing.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

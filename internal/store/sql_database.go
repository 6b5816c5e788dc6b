package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/migrations"
)

// DB wraps the raw connection together with everything that differs between
// the two supported engines: the placeholder format used by the query
// builder, the goose dialect, and the driver error classifier.
type DB struct {
	*sql.DB

	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations using the dialect the
// connection was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isPostgresDSN reports whether the DSN selects the PostgreSQL engine.
// Anything without a postgres scheme is treated as a SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github-activity/internal/event/repository"
	"github-activity/internal/event/repository/sqlite/migrations"
	"github-activity/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository and applies pending migrations.
// The repository owns db and closes it on Close.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("event/repository/sqlite: db is required")
	}
	if err := migrations.Run(ctx, db); err != nil {
		return nil, fmt.Errorf("event/repository/sqlite: run migrations: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// Close closes the underlying database.
func (r *implRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}

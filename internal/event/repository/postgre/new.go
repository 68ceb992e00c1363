package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github-activity/internal/event/repository"
	"github-activity/pkg/log"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS webhook_events (
		id          BIGSERIAL PRIMARY KEY,
		request_id  TEXT NOT NULL DEFAULT '',
		author      TEXT,
		action      TEXT NOT NULL CHECK (action IN ('PUSH', 'PULL_REQUEST', 'MERGE')),
		from_branch TEXT NOT NULL DEFAULT '',
		to_branch   TEXT NOT NULL DEFAULT '',
		timestamp   TEXT NOT NULL
	)`

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed Repository, creating its table if missing.
// The repository owns pool and closes it on Close.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (repository.Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("event/repository/postgre: pool is required")
	}
	if _, err := pool.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("event/repository/postgre: create table: %w", err)
	}
	return &implRepository{pool: pool, l: l}, nil
}

// Close closes the pool.
func (r *implRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgre.%s", method)
}

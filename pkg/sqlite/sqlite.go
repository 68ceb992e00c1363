package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

// Config configures an embedded SQLite database.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Open opens (creating if needed) the database at cfg.Path and pings it.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir: %w", err)
		}
	}

	db, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if cfg.Path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}

func dsn(cfg Config) string {
	if cfg.Path == MemoryPath {
		return MemoryPath
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
}

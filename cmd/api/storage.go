package main

import (
	"context"
	"fmt"

	"github-activity/config"
	"github-activity/internal/event/repository"
	"github-activity/internal/event/repository/memory"
	mongoRepo "github-activity/internal/event/repository/mongo"
	postgreRepo "github-activity/internal/event/repository/postgre"
	sqliteRepo "github-activity/internal/event/repository/sqlite"
	"github-activity/pkg/log"
	pkgMongo "github-activity/pkg/mongo"
	pkgPostgre "github-activity/pkg/postgre"
	pkgSQLite "github-activity/pkg/sqlite"
)

// openRepository connects the configured driver. The returned repository owns
// its connection and releases it on Close.
func openRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case repository.DriverMongo:
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:       cfg.Mongo.URI,
			TLSCAFile: cfg.Mongo.TLSCAFile,
			Timeout:   cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, err
		}
		repo, err := mongoRepo.New(ctx, client, mongoRepo.Options{
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		}, l)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return repo, nil

	case repository.DriverPostgres:
		pool, err := pkgPostgre.Connect(ctx, pkgPostgre.Config{
			DSN:      cfg.Postgres.DSN,
			MaxConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, err
		}
		repo, err := postgreRepo.New(ctx, pool, l)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return repo, nil

	case repository.DriverSQLite:
		db, err := pkgSQLite.Open(ctx, pkgSQLite.Config{Path: cfg.SQLite.Path})
		if err != nil {
			return nil, err
		}
		repo, err := sqliteRepo.New(ctx, db, l)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return repo, nil

	case repository.DriverMemory:
		l.Warn(ctx, "Using in-memory event store, records are lost on restart")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownDriver, cfg.Driver)
	}
}

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity/config"
	"github-activity/internal/event/repository"
	"github-activity/pkg/log"
)

func TestOpenRepository(t *testing.T) {
	ctx := context.Background()

	_, err := openRepository(ctx, config.StorageConfig{Driver: "redis"}, log.NewNop())
	assert.ErrorIs(t, err, repository.ErrUnknownDriver)

	for _, cfg := range []config.StorageConfig{
		{Driver: repository.DriverMemory},
		{Driver: repository.DriverSQLite, SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "events.db")}},
	} {
		repo, err := openRepository(ctx, cfg, log.NewNop())
		require.NoError(t, err, cfg.Driver)

		events, err := repo.ListRecentEvents(ctx, repository.ListRecentEventsOptions{})
		require.NoError(t, err, cfg.Driver)
		assert.Empty(t, events, cfg.Driver)
		assert.NoError(t, repo.Close(ctx), cfg.Driver)
	}
}

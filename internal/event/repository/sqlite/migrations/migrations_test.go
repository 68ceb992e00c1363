package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity/internal/event/repository/sqlite/migrations"
	"github-activity/pkg/sqlite"
)

func TestLoad(t *testing.T) {
	ms, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, ms)

	assert.Equal(t, 1, ms[0].Version)
	assert.Equal(t, "create webhook events", ms[0].Description)
	assert.Contains(t, ms[0].SQL, "AUTOINCREMENT")

	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version)
	}
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Config{Path: sqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(ctx, db))
	require.NoError(t, migrations.Run(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	ms, err := migrations.Load()
	require.NoError(t, err)
	assert.Equal(t, len(ms), count)

	var table string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'webhook_events'`,
	).Scan(&table))
	assert.Equal(t, "webhook_events", table)
}

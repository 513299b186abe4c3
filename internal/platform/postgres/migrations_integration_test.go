//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/ftfltech/careers-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latestMigration is the version of the newest file under migrations/.
const latestMigration int64 = 20250101000004

func TestMigratorVersion(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	migrator := postgres.NewMigrator(testDB, nil)

	version, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, latestMigration, version)

	// Up is a no-op once the schema is current.
	require.NoError(t, migrator.Up(ctx))
	require.NoError(t, migrator.Status(ctx))
}

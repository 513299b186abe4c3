//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/postgres"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/ftfltech/careers-api/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSubscriberStore(t *testing.T) {
	t.Parallel()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		subStore := postgres.NewPostgresSubscriberStore(tx, nil)
		email := "reader-" + uuid.NewString()[:8] + "@example.com"

		sub, err := domain.NewSubscriber(email)
		require.NoError(t, err)
		require.NoError(t, subStore.Create(ctx, sub))

		got, err := subStore.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, sub.ID, got.ID)

		dup, err := domain.NewSubscriber(email)
		require.NoError(t, err)
		err = subStore.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.True(t, store.IsDuplicateError(err))

		_, err = subStore.GetByEmail(ctx, "nobody-"+uuid.NewString()+"@example.com")
		assert.ErrorIs(t, err, store.ErrSubscriberNotFound)

		subs, err := subStore.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, subs)
	})
}

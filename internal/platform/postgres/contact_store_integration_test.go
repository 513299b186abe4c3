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

func newTestContact(t *testing.T) *domain.Contact {
	t.Helper()
	c, err := domain.NewContact(domain.ContactDetails{
		Name:            "A",
		Email:           "a@b.com",
		City:            "X",
		Phone:           "123",
		ServiceSelected: "S",
		Message:         "hi",
	})
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

func TestPostgresContactStore_ApplyUpdate(t *testing.T) {
	t.Parallel()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		contactStore := postgres.NewPostgresContactStore(tx, nil)
		contact := newTestContact(t)
		require.NoError(t, contactStore.Create(ctx, contact))

		got, err := contactStore.GetByID(ctx, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ContactStatusNew, got.Status)
		assert.Equal(t, []string{}, got.FollowUp)

		updated, err := contactStore.ApplyUpdate(ctx, contact.ID, store.ContactUpdate{
			Status:   strPtr("contacted"),
			FollowUp: strPtr("called"),
		})
		require.NoError(t, err)
		assert.Equal(t, "contacted", updated.Status)
		assert.Equal(t, "", updated.LeadType)
		assert.Equal(t, []string{"called"}, updated.FollowUp)

		updated, err = contactStore.ApplyUpdate(ctx, contact.ID, store.ContactUpdate{
			LeadType: strPtr("hot"),
			FollowUp: strPtr("emailed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "contacted", updated.Status)
		assert.Equal(t, "hot", updated.LeadType)
		assert.Equal(t, []string{"called", "emailed"}, updated.FollowUp)

		unchanged, err := contactStore.ApplyUpdate(ctx, contact.ID, store.ContactUpdate{})
		require.NoError(t, err)
		assert.Equal(t, updated.FollowUp, unchanged.FollowUp)
	})
}

func TestPostgresContactStore_ListAndDelete(t *testing.T) {
	t.Parallel()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		contactStore := postgres.NewPostgresContactStore(tx, nil)
		contact := newTestContact(t)
		require.NoError(t, contactStore.Create(ctx, contact))

		contacts, err := contactStore.List(ctx)
		require.NoError(t, err)
		var found bool
		for _, c := range contacts {
			if c.ID == contact.ID {
				found = true
			}
		}
		assert.True(t, found)

		require.NoError(t, contactStore.Delete(ctx, contact.ID))
		assert.ErrorIs(t, contactStore.Delete(ctx, contact.ID), store.ErrContactNotFound)

		_, err = contactStore.ApplyUpdate(ctx, uuid.New(), store.ContactUpdate{FollowUp: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}

func TestPostgresOrderStore_Create(t *testing.T) {
	t.Parallel()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		orderStore := postgres.NewPostgresOrderStore(tx, nil)
		order := domain.NewOrderFromContact(newTestContact(t), "pkg", "user")
		require.NoError(t, orderStore.Create(ctx, order))

		var contactID uuid.UUID
		err := tx.QueryRowContext(ctx, `SELECT contact_id FROM orders WHERE id = $1`, order.ID).Scan(&contactID)
		require.NoError(t, err)
		assert.Equal(t, order.ContactID, contactID)
	})
}

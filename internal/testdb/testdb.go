//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ftfltech/careers-api/internal/platform/postgres"
)

// TestTimeout bounds setup work done against the test database.
const TestTimeout = 10 * time.Second

// databaseURLEnvVars are checked in order for a test database URL.
var databaseURLEnvVars = []string{"CAREERS_TEST_DB_URL", "CAREERS_DATABASE_URL", "DATABASE_URL"}

// GetTestDatabaseURL returns the first database URL found in the environment,
// or "" if none is set.
func GetTestDatabaseURL() string {
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// Open connects to the test database.
func Open() (*sql.DB, error) {
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		return nil, errors.New("no test database URL configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	return postgres.Open(ctx, dbURL)
}

// Migrate applies every migration to db.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := postgres.NewMigrator(db, nil).Up(ctx); err != nil {
		return fmt.Errorf("failed to set up test database schema: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				t.Logf("Warning: failed to rollback transaction after panic: %v", rbErr)
			}
			panic(r)
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", rbErr)
		}
	}()

	fn(t, tx)
}

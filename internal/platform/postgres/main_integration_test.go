//go:build integration

package postgres_test

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ftfltech/careers-api/internal/testdb"
)

const testTimeout = 5 * time.Second

var testDB *sql.DB

// TestMain opens one connection and migrates once for the whole package.
func TestMain(m *testing.M) {
	if !testdb.IsIntegrationTestEnvironment() {
		fmt.Println("no test database configured - skipping postgres integration tests")
		os.Exit(0)
	}

	var err error
	testDB, err = testdb.Open()
	if err != nil {
		fmt.Printf("Failed to open database connection: %v\n", err)
		os.Exit(1)
	}

	if err := testdb.Migrate(testDB); err != nil {
		fmt.Printf("Failed to setup test database schema: %v\n", err)
		os.Exit(1)
	}

	exitCode := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Printf("failed to close database connection: %v\n", err)
	}
	os.Exit(exitCode)
}

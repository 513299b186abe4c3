//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Tests using it carry the integration build tag and
// skip themselves when no database URL is configured.
//
// Typical use from a TestMain:
//
//	db, err := testdb.Open()
//	...
//	err = testdb.Migrate(db)
//
// and from an individual test:
//
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    s := postgres.NewPostgresJobStore(tx, nil)
//	    ...
//	})
//
// Every WithTx transaction is rolled back, so tests can run in parallel
// without seeing each other's rows.
package testdb

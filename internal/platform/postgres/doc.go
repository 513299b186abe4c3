// Package postgres implements the store interfaces on PostgreSQL through the
// pgx database/sql driver, and carries the goose migrations that create the
// schema.
//
// Jobs are kept as JSONB documents with their applications embedded, so a job
// and everything it owns is read, written and deleted as one row. Contacts,
// orders and subscribers are plain rows; the contact follow-up log is a JSONB
// array appended to in place.
package postgres
